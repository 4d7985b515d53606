package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/coach"
	"github.com/abhisek/echoz/internal/practice"
	"github.com/abhisek/echoz/internal/recording"
)

// tipWait bounds how long a headless round waits for an LLM tip.
const tipWait = 5 * time.Second

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run a round in the terminal without the full-screen UI",
	Long: `Run one practice round on plain stdout.

With a microphone, speak after each prompt and press Enter when done (or
just stop talking). With --simulate, type each answer on its own line;
this also works with piped input.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("language", "", "Prompt language, e.g. en-US (default from config)")
	practiceCmd.Flags().String("category", "", "Prompt category (default: all)")
	practiceCmd.Flags().Int("count", 0, "Prompts per round (default from config)")
}

func runPractice(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	round, err := rt.practice.Begin(ctx, rt.pool, rt.setup(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lines := readLines(cmd.InOrStdin())
	fmt.Fprintf(out, "Round of %d (%s). Score ★ %d\n\n", len(round.Prompts), round.Language, round.Total)

	for {
		prompt, ok := practice.Current(round)
		if !ok {
			break
		}
		fmt.Fprintf(out, "[%d/%d] %s\n", round.Index+1, len(round.Prompts), prompt.Text)

		res, err := rt.attempt(ctx, prompt, lines, out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		tips := make(chan *coach.Feedback, 1)
		a, err := rt.practice.HandleResult(ctx, round, res, func(f *coach.Feedback) {
			select {
			case tips <- f:
			default:
			}
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}
		printAttempt(out, a)
		if rt.coachLLM && a.Feedback != nil {
			select {
			case f := <-tips:
				fmt.Fprintf(out, "   Coach: %s\n", f.Tip)
			case <-time.After(tipWait):
			case <-ctx.Done():
			}
		}
		fmt.Fprintln(out)

		if !practice.Advance(round) {
			break
		}
	}

	sum, err := rt.practice.End(ctx, round)
	if sum == nil {
		return err
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	printSummary(out, sum)
	return nil
}

// attempt records one utterance. In simulate mode the next input line is
// spoken; otherwise the microphone runs until silence or an input line.
func (rt *runtime) attempt(ctx context.Context, prompt catalog.Prompt, lines <-chan string, out io.Writer) (recording.Result, error) {
	var line string
	if rt.typist != nil {
		var ok bool
		if line, ok = <-lines; !ok {
			return recording.Result{}, io.EOF
		}
		rt.typist.Say(line)
	} else {
		fmt.Fprintln(out, "   Speak now... (Enter to finish)")
	}

	sess, err := rt.recorder.StartSession(ctx, prompt)
	if err != nil {
		return recording.Result{}, err
	}

	if rt.typist != nil {
		// The typed line is complete once its final fragment is heard.
		heard := make(chan struct{})
		sess.OnTranscript(func(u recording.Update) {
			if u.Kind == recording.EventFinal {
				select {
				case heard <- struct{}{}:
				default:
				}
			}
		})
		// An empty line is silence; give up on it quickly.
		var silent <-chan time.Time
		if line == "" {
			silent = time.After(time.Second)
		}
		select {
		case <-heard:
		case <-silent:
		case <-sess.Done():
		case <-ctx.Done():
		}
		rt.recorder.CancelSession(sess)
	} else {
		select {
		case <-lines:
			rt.recorder.CancelSession(sess)
		case <-sess.Done():
		case <-ctx.Done():
			rt.recorder.CancelSession(sess)
		}
	}
	return sess.Wait(context.WithoutCancel(ctx))
}

// readLines streams lines from r until EOF.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			ch <- strings.TrimSpace(sc.Text())
		}
	}()
	return ch
}

func printAttempt(out io.Writer, a practice.Attempt) {
	if !a.Scored {
		reason := "stopped"
		if a.Result.Err != nil {
			reason = a.Result.Err.Error()
		}
		fmt.Fprintf(out, "   not scored: %s\n", reason)
		return
	}
	fmt.Fprintf(out, "   heard: %q\n", a.Result.Transcript)
	fmt.Fprintf(out, "   %s  %.0f%%  %+d\n", strings.ToUpper(string(a.Outcome.Tier)), a.Outcome.Similarity*100, a.ScoreApplied)
	if a.Feedback != nil && a.Feedback.Tip != "" {
		fmt.Fprintf(out, "   Tip: %s\n", a.Feedback.Tip)
	}
}

func printSummary(out io.Writer, s *practice.Summary) {
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintf(out, "Prompts:   %d\n", s.Served)
	fmt.Fprintf(out, "Excellent: %d   Close: %d   Retry: %d   Unscored: %d\n", s.Excellent, s.Close, s.Retry, s.Unscored)
	fmt.Fprintf(out, "Accuracy:  %.0f%%\n", s.Accuracy*100)
	fmt.Fprintf(out, "Score:     %+d (★ %d)\n", s.ScoreGained, s.TotalScore)
}
