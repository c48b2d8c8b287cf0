package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Commands recognised at the play prompt
const (
	playSkip = ":skip"
	playQuit = ":quit"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Play an interactive game in the terminal.

Type your guess for each scrambled word. Type :skip to skip a word
or :quit to stop. After the tenth word the summary is shown and you
can choose to play again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPlayer(client, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			return p.run()
		},
	}
}

// player drives one interactive game loop
type player struct {
	client *Client
	cfg    *Config
	in     *bufio.Scanner
	out    io.Writer
	render *Output
}

func newPlayer(c *Client, conf *Config, in io.Reader, out io.Writer) *player {
	return &player{
		client: c,
		cfg:    conf,
		in:     bufio.NewScanner(in),
		out:    out,
		render: NewOutput("text", out, out),
	}
}

func (p *player) run() error {
	var s Session
	if err := p.client.Post("/api/v1/sessions", nil, &s); err != nil {
		return err
	}
	if err := p.cfg.SaveSession(s.ID); err != nil {
		return err
	}

	for {
		if s.GameOver {
			again, err := p.finish(s)
			if err != nil || !again {
				return err
			}
			if err := p.client.Post(sessionPath(s.ID, "reset"), nil, &s); err != nil {
				return err
			}
			continue
		}

		p.show(s)
		line, ok := p.prompt("> ")
		if !ok {
			return nil
		}

		switch line {
		case "":
			continue
		case playQuit:
			_, _ = fmt.Fprintln(p.out, "Bye!")
			return nil
		case playSkip:
			if err := p.client.Post(sessionPath(s.ID, "skip"), nil, &s); err != nil {
				return err
			}
		default:
			var result GuessResult
			if err := p.client.Post(sessionPath(s.ID, "guess"), map[string]string{"guess": line}, &result); err != nil {
				return err
			}
			if result.Correct {
				_, _ = fmt.Fprintln(p.out, "Correct!")
			}
			s = result.Session
		}
	}
}

func (p *player) show(s Session) {
	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, StatusRow(s))
	_, _ = fmt.Fprintf(p.out, "Unscramble: %s\n", s.ScrambledWord)
	if s.WrongGuess {
		_, _ = fmt.Fprintln(p.out, "Wrong Guess!")
	}
}

// finish shows the summary and asks whether to play again.
// Declining ends the session on the server.
func (p *player) finish(s Session) (bool, error) {
	_, _ = fmt.Fprintln(p.out)
	if s.Summary != nil {
		p.render.Print(*s.Summary)
	}

	answer, _ := p.prompt("Play again? [y/N] ")
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}

	if err := p.client.Delete(sessionPath(s.ID)); err != nil {
		return false, err
	}
	if err := p.cfg.ClearSession(); err != nil {
		return false, err
	}
	_, _ = fmt.Fprintln(p.out, "Thanks for playing!")
	return false, nil
}

// prompt writes msg and reads one trimmed line; ok is false at end of input
func (p *player) prompt(msg string) (string, bool) {
	_, _ = fmt.Fprint(p.out, msg)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}
