// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
	"github.com/aliskhannn/vocabulary-bot/internal/service"
)

const (
	msgWelcome        = "👋 Hello! I'm your English learning bot.\nChoose an option below:"
	msgInfo           = "ℹ️ This bot helps you learn English words for Czech speakers."
	msgFeedback       = "Have you already completed a course with us? If yes, we would be glad to receive your feedback! %s"
	msgChooseLevel    = "📚 Choose your level:"
	msgLevelSelected  = "✅ Level set to %s."
	msgInvalidLevel   = "Invalid level, try again."
	msgRestartTest    = "Please start the test again with 'English test 🤓'."
	msgNoWords        = "📭 There are no words to learn yet. Try again later."
	msgTooFewWords    = "😕 %s has too few words for a test: it needs at least %d different translations.\nChoose another level with 'Choose level 📚'."
	msgInternalError  = "Something went wrong. Please try again later."
	msgQuizStarted    = "🎯 English test started! You will get %d questions."
	msgQuizCorrect    = "✅ Correct! '%s' = %s"
	msgQuizWrong      = "❌ Wrong! '%s' = %s"
	msgQuizFinished   = "🎓 Test finished!\nYour score: %d/%d ✅"
	msgNewWord        = "🧠 New word: %s\n💬 Translation: %s"
	msgWordOfTheDay   = "🌞 Word of the day:\n🧠 %s — %s"
	msgQuestionHeader = "Question %d/%d"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newMenuMessage creates a plain message that brings back the main menu.
func newMenuMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := newPlainMessage(chatID, text)
	msg.ReplyMarkup = buildMainMenuKeyboard()
	return msg
}

func formatNewWord(w entities.Word) string {
	return fmt.Sprintf(msgNewWord, w.Term, w.Translation)
}

func formatWordOfTheDay(p entities.BroadcastPayload) string {
	return fmt.Sprintf(msgWordOfTheDay, p.Word.Term, p.Word.Translation)
}

// formatQuizQuestion renders the question as MarkdownV2.
func formatQuizQuestion(step *service.QuizStep) string {
	var sb strings.Builder
	sb.WriteString(md(fmt.Sprintf(msgQuestionHeader, step.Asked, step.Total)))
	sb.WriteString("\n")
	sb.WriteString(md("Translate the word: "))
	sb.WriteString(bold(step.Next.Term))
	return sb.String()
}

func formatAnswerFeedback(step *service.QuizStep) string {
	q := step.Answered
	if step.Correct {
		return fmt.Sprintf(msgQuizCorrect, q.Term, q.Correct)
	}
	return fmt.Sprintf(msgQuizWrong, q.Term, q.Correct)
}

// formatTooFewWords names the level the error reports, falling back to level.
func formatTooFewWords(err error, level string) string {
	var vocabErr *service.InsufficientVocabularyError
	if errors.As(err, &vocabErr) {
		level = vocabErr.Level
	}
	return fmt.Sprintf(msgTooFewWords, level, service.OptionsCount)
}

func formatQuizResult(step *service.QuizStep) string {
	return fmt.Sprintf(msgQuizFinished, step.Score, step.Total)
}
