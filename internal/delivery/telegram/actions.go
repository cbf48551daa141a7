package telegram

import "strings"

// action is a routing key. Button labels and commands are display concerns
// mapped onto actions by the tables below.
type action int

const (
	actionNone action = iota
	actionStart
	actionInfo
	actionFeedback
	actionTeachWord
	actionChooseLevel
	actionQuiz
)

var actionNames = map[action]string{
	actionNone:        "none",
	actionStart:       "start",
	actionInfo:        "info",
	actionFeedback:    "feedback",
	actionTeachWord:   "teach_word",
	actionChooseLevel: "choose_level",
	actionQuiz:        "quiz",
}

func (a action) String() string {
	return actionNames[a]
}

// button is a main menu entry. Key is the routing text, Label is what the user sees.
type button struct {
	Action action
	Key    string
	Emoji  string
}

func (b button) Label() string {
	return b.Key + " " + b.Emoji
}

var mainMenuButtons = []button{
	{Action: actionTeachWord, Key: "Teach new word", Emoji: "🧑‍🏫"},
	{Action: actionQuiz, Key: "English test", Emoji: "🤓"},
	{Action: actionChooseLevel, Key: "Choose level", Emoji: "📚"},
	{Action: actionInfo, Key: "Information", Emoji: "ℹ️"},
	{Action: actionFeedback, Key: "Leave feedback", Emoji: "❓"},
}

// commandActions maps bot commands (without the slash) to actions.
var commandActions = map[string]action{
	"start":    actionStart,
	"word":     actionTeachWord,
	"test":     actionQuiz,
	"level":    actionChooseLevel,
	"info":     actionInfo,
	"feedback": actionFeedback,
}

var (
	labelActions = buildLabelActions()
	keyActions   = buildKeyActions()
)

func buildLabelActions() map[string]action {
	m := make(map[string]action, len(mainMenuButtons))
	for _, b := range mainMenuButtons {
		m[b.Label()] = b.Action
	}
	return m
}

func buildKeyActions() map[string]action {
	m := make(map[string]action, len(mainMenuButtons))
	for _, b := range mainMenuButtons {
		m[strings.ToLower(b.Key)] = b.Action
	}
	return m
}

// resolveLabel maps a full button label, as sent by the keyboard, to an action.
func resolveLabel(text string) action {
	return labelActions[strings.TrimSpace(text)]
}

// resolveText maps free text to an action. It matches a full button label or
// its key without the emoji, ignoring case and surrounding spaces.
func resolveText(text string) action {
	if a := resolveLabel(text); a != actionNone {
		return a
	}
	return keyActions[strings.ToLower(strings.TrimSpace(text))]
}

// resolveCommand maps a bot command to an action.
func resolveCommand(cmd string) action {
	return commandActions[strings.ToLower(cmd)]
}
