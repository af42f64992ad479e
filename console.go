package main

import (
	"fmt"
	"log"
	"sync"
	"time"
)

const (
	maxMessages = 1000
)

type timedMessage struct {
	Text string
	Time time.Time
}

var (
	messageMu sync.Mutex
	messages  []timedMessage
)

// consoleMessage appends msg to the on-screen console and the log.
func consoleMessage(msg string) {
	if msg == "" {
		return
	}
	log.Print(msg)

	messageMu.Lock()
	messages = append(messages, timedMessage{Text: msg, Time: time.Now()})

	//Remove oldest message if full
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}
	messageMu.Unlock()
}

func getConsoleMessages() []string {
	return recentConsoleMessages(maxMessages)
}

// recentConsoleMessages returns at most n of the newest messages, oldest first.
func recentConsoleMessages(n int) []string {
	messageMu.Lock()
	defer messageMu.Unlock()

	start := 0
	if len(messages) > n {
		start = len(messages) - n
	}
	out := make([]string, 0, len(messages)-start)
	for _, msg := range messages[start:] {
		if gs.ConsoleTimestamps {
			out = append(out, fmt.Sprintf("[%s] %s", msg.Time.Format("15:04"), msg.Text))
		} else {
			out = append(out, msg.Text)
		}
	}
	return out
}

func clearConsole() {
	messageMu.Lock()
	messages = nil
	messageMu.Unlock()
}
