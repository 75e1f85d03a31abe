package main

import (
	"strings"

	"github.com/mogwai-project/mogwai-node/util"

	"github.com/ergochat/readline"
	"github.com/pkg/errors"
)

type Cmd struct {
	Names  []string
	Action func(args []string) error
	Args   string
}

type Commands []Cmd

// Readline will pass the whole line and current offset to it
// Completer need to pass all the candidates, and how long they shared the same characters in line
// Example:
//
// [go, git, git-shell, grep]
// Do("g", 1) => ["o", "it", "it-shell", "rep"], 1
// Do("gi", 2) => ["t", "t-shell"], 2
// Do("git", 3) => ["", "-shell"], 3
func (c Commands) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if len(line) == 0 {
		return [][]rune{}, 0
	}

	lineStr := string(line)

	sols := [][]rune{}

	for _, v := range c {
		name := v.Names[0]
		if strings.HasPrefix(name, lineStr) {
			sols = append(sols, []rune(name[len(lineStr):]))
		}
	}

	return sols, pos
}

func (a *app) commands() Commands {
	cmds := Commands{{
		Names:  []string{"master"},
		Args:   "<hex seed | mnemonic words>",
		Action: a.cmdMaster,
	}, {
		Names:  []string{"mnemonic", "new"},
		Args:   "",
		Action: a.cmdMnemonic,
	}, {
		Names:  []string{"derive"},
		Args:   "<extended key> <path>",
		Action: a.cmdDerive,
	}, {
		Names:  []string{"neuter", "xpub"},
		Args:   "<extended key>",
		Action: a.cmdNeuter,
	}, {
		Names:  []string{"decode", "info"},
		Args:   "<extended key>",
		Action: a.cmdDecode,
	}, {
		Names:  []string{"address", "addr"},
		Args:   "<extended key | wif | address>",
		Action: a.cmdAddress,
	}, {
		Names:  []string{"account", "accounts"},
		Args:   "[list | add <index> <mnemonic> | remove <account> | xprv <account>]",
		Action: a.cmdAccount,
	}, {
		Names:  []string{"next"},
		Args:   "<account> [receive | change]",
		Action: a.cmdNext,
	}}
	return cmds
}

// run executes the command line args. Unknown commands return an error.
func (a *app) run(cmds Commands, args []string) error {
	if len(args) == 0 {
		return errors.New("no command given")
	}
	if args[0] == "help" {
		a.help(cmds)
		return nil
	}
	for _, v := range cmds {
		for _, name := range v.Names {
			if name == args[0] {
				return v.Action(args[1:])
			}
		}
	}
	return errors.Errorf("unknown command %q, use help to see a list of commands", args[0])
}

func (a *app) help(cmds Commands) {
	a.log.Info("List of available commands:")
	for _, v := range cmds {
		a.log.Infof("%s %s", util.PadL(v.Names[0], 10), v.Args)
	}
	a.log.Infof("%s", util.PadL("help", 10))
	a.log.Infof("%s", util.PadL("exit", 10))
}

func (a *app) prompts() {
	cmds := a.commands()

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m>\033[0m ",
		AutoComplete:    append(cmds, Cmd{Names: []string{"help"}}, Cmd{Names: []string{"exit"}}),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	l.CaptureExitSignal()

	a.log.SetStdout(l.Stdout())
	a.log.SetStderr(l.Stderr())

	lcfg := l.GeneratePasswordConfig()
	lcfg.MaskRune = '*'
	a.readPassword = func(prompt string) ([]byte, error) {
		lcfg.Prompt = prompt
		pass, err := l.ReadLineWithConfig(lcfg)
		return []byte(pass), err
	}

	a.help(cmds)

	for {
		line, err := l.ReadLine()
		if err != nil {
			a.log.Debug(err)
			return
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		if args[0] == "exit" || args[0] == "quit" {
			return
		}

		if err := a.run(cmds, args); err != nil {
			a.log.Err(err)
		}
	}
}
