package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Command - A menu choice
type Command int

const (
	LoadBids   Command = 1
	DisplayAll Command = 2
	FindBid    Command = 3
	RemoveBid  Command = 4
	Exit       Command = 9
)

// String - Returns the menu label of the command
func (C Command) String() string {
	switch C {
	case LoadBids:
		return "Load Bids"
	case DisplayAll:
		return "Display All Bids"
	case FindBid:
		return "Find Bid"
	case RemoveBid:
		return "Remove Bid"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Command(%d)", int(C))
	}
}

// commands - All commands in menu order
var commands = []Command{LoadBids, DisplayAll, FindBid, RemoveBid, Exit}

// ParseCommand - Converts a menu choice such as "3" to a Command
func ParseCommand(choice string) (cmd Command, err error) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		err = fmt.Errorf("invalid choice %q", choice)
		return
	}

	for _, c := range commands {
		if Command(n) == c {
			cmd = c
			return
		}
	}

	err = fmt.Errorf("invalid choice %q", choice)

	return
}

// Usage - Returns the menu text
func Usage() string {
	var sb strings.Builder
	sb.WriteString("Menu:\n")
	for _, c := range commands {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", int(c), c))
	}
	return sb.String()
}
