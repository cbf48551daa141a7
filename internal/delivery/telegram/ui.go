package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// buildMainMenuKeyboard builds the persistent main menu, two buttons per row.
func buildMainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(mainMenuButtons); i += 2 {
		row := []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(mainMenuButtons[i].Label())}
		if i+1 < len(mainMenuButtons) {
			row = append(row, tgbotapi.NewKeyboardButton(mainMenuButtons[i+1].Label()))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

// buildLevelKeyboard builds a one-time keyboard with one level per row.
func buildLevelKeyboard(levels []string) tgbotapi.ReplyKeyboardMarkup {
	return buildOneTimeKeyboard(levels)
}

// buildQuizAnswerKeyboard builds a one-time keyboard with one option per row.
func buildQuizAnswerKeyboard(options []string) tgbotapi.ReplyKeyboardMarkup {
	return buildOneTimeKeyboard(options)
}

func buildOneTimeKeyboard(values []string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(values))
	for _, v := range values {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(v)))
	}

	kb := tgbotapi.NewOneTimeReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

// botCommands lists the commands registered with Telegram.
func botCommands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot and subscribe to the word of the day"},
		{Command: "word", Description: "Teach me a new word"},
		{Command: "test", Description: "Start a 5 question test"},
		{Command: "level", Description: "Choose your level"},
		{Command: "info", Description: "About this bot"},
		{Command: "feedback", Description: "Leave feedback"},
	}
}

// SetCommands registers the bot command list with Telegram.
func SetCommands(r Requester) error {
	_, err := r.Request(tgbotapi.NewSetMyCommands(botCommands()...))
	return err
}
