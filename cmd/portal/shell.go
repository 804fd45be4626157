package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jonathan/placement-portal/internal/config"
	"github.com/jonathan/placement-portal/internal/credentials"
	"github.com/jonathan/placement-portal/internal/observability"
	"github.com/jonathan/placement-portal/internal/portal"
	"github.com/jonathan/placement-portal/internal/schemas"
	"github.com/jonathan/placement-portal/internal/tasks"
	"github.com/jonathan/placement-portal/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Drive the portal with JSON events on stdin",
	Long: `Read one JSON event per line from stdin, for example
  {"type":"login","role":"student","identity":"student@college.edu","secret":"student123"}
and write every renderer call to stdout as a JSON line. Deferred output
(login confirmation, chat replies, resume parsing) is flushed before exit.
With --pretty, output is printed for humans instead of as JSON.`,
	RunE: runShellCmd,
}

var pretty bool

func init() {
	shellCmd.Flags().BoolVar(&pretty, "pretty", false, "Print human-readable output instead of JSON lines")
	rootCmd.AddCommand(shellCmd)
}

func runShellCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}
	hasher, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	write := jsonWriter(cmd.OutOrStdout())
	if pretty {
		write = prettyWriter(cmd.OutOrStdout())
	}
	return runShell(cmd.Context(), cmd.InOrStdin(), write, cfg, hasher, logger)
}

// outputWriter emits one portal output.
type outputWriter func(portal.Output) error

func jsonWriter(out io.Writer) outputWriter {
	enc := json.NewEncoder(out)
	return func(o portal.Output) error {
		return enc.Encode(o)
	}
}

func prettyWriter(out io.Writer) outputWriter {
	printer := observability.NewPrinter(out)
	return func(o portal.Output) error {
		printer.Print(o)
		return nil
	}
}

// shellEvent is the flat wire form of every event type.
type shellEvent struct {
	Type string `json:"type"`

	Role     types.Role    `json:"role"`
	Identity string        `json:"identity"`
	Secret   string        `json:"secret"`
	Section  types.Section `json:"section"`
	Skill    string        `json:"skill"`
	Name     string        `json:"name"`
	Size     int64         `json:"size"`

	FullName   *string `json:"full_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	RollNumber *string `json:"roll_number"`
	Address    *string `json:"address"`
	Department *string `json:"department"`
	Year       *string `json:"year"`
	CGPA       *string `json:"cgpa"`

	JobTypes    []string `json:"job_types"`
	Locations   string   `json:"locations"`
	SalaryRange string   `json:"salary_range"`

	Text    string            `json:"text"`
	Surface types.ChatSurface `json:"surface"`

	JobID       string `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Draft       bool   `json:"draft"`

	ID int `json:"id"`
}

// runShell feeds events from in to a fresh portal and passes its output to write.
func runShell(ctx context.Context, in io.Reader, write outputWriter, cfg *config.Config, hasher *config.PasswordConfig, logger *slog.Logger) error {
	store, err := credentials.NewStore(hasher)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	outputs := make(chan portal.Output, 64)

	app, err := portal.New(portal.Options{
		Config:      cfg,
		Credentials: store,
		Logger:      logger,
		Renderer: portal.SinkRenderer{Emit: func(o portal.Output) {
			select {
			case outputs <- o:
			case <-gctx.Done():
			}
		}},
	})
	if err != nil {
		return err
	}

	g.Go(func() error {
		for o := range outputs {
			if err := write(o); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	})

	g.Go(func() error {
		pending, readErr := readEvents(gctx, in, app, logger)

		var waitErr error
		for _, h := range pending {
			if err := h.Wait(gctx); err != nil && !errors.Is(err, tasks.ErrCancelled) {
				waitErr = err
				break
			}
		}
		// Outputs may only close once no task can emit.
		app.Close()
		for _, h := range pending {
			_ = h.Wait(context.Background())
		}
		close(outputs)

		if readErr != nil {
			return readErr
		}
		return waitErr
	})

	return g.Wait()
}

// readEvents applies every line of in and returns the deferred tasks they scheduled.
func readEvents(ctx context.Context, in io.Reader, app *portal.App, logger *slog.Logger) ([]*tasks.Handle, error) {
	var pending []*tasks.Handle
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		if ctx.Err() != nil {
			return pending, ctx.Err()
		}
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		h, err := dispatch(app, raw)
		if err != nil {
			logger.Warn("event not applied", slog.Int("line", line), slog.String("error", err.Error()))
		}
		if h != nil {
			pending = append(pending, h)
		}
	}
	if err := scanner.Err(); err != nil {
		return pending, fmt.Errorf("failed to read events: %w", err)
	}
	return pending, nil
}

// dispatch validates one event line and applies it to app.
func dispatch(app *portal.App, raw []byte) (*tasks.Handle, error) {
	if err := schemas.ValidateEvent(raw); err != nil {
		return nil, err
	}
	var e shellEvent
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}

	switch e.Type {
	case "login":
		_, h, err := app.Login(types.LoginRequest{Role: e.Role, Identity: e.Identity, Secret: e.Secret})
		return h, err
	case "logout":
		app.Logout()
		return nil, nil
	case "navigate":
		return nil, app.Navigate(e.Section)
	case "quick_action":
		return nil, app.QuickAction()
	case "toggle_skill":
		_, err := app.ToggleSkill(e.Skill)
		return nil, err
	case "add_certification":
		_, err := app.AddCertification(e.Name)
		return nil, err
	case "update_personal":
		_, err := app.UpdatePersonal(types.PersonalFields{
			FullName:   e.FullName,
			Email:      e.Email,
			Phone:      e.Phone,
			RollNumber: e.RollNumber,
			Address:    e.Address,
		})
		return nil, err
	case "update_academic":
		_, err := app.UpdateAcademic(types.AcademicFields{Department: e.Department, Year: e.Year, CGPA: e.CGPA})
		return nil, err
	case "update_preferences":
		return nil, app.UpdatePreferences(types.PreferencesRequest{
			JobTypes:    e.JobTypes,
			Locations:   e.Locations,
			SalaryRange: e.SalaryRange,
		})
	case "upload_resume":
		return app.UploadResume(types.ResumeFile{Name: e.Name, Size: e.Size})
	case "chat":
		return app.SendChat(types.ChatRequest{Text: e.Text, Surface: e.Surface})
	case "skill_gap":
		_, err := app.RunSkillGap()
		return nil, err
	case "apply":
		return nil, app.SubmitApplication(types.ApplicationRequest{JobID: e.JobID, CoverLetter: e.CoverLetter})
	case "post_job":
		_, err := app.SubmitJobPost(types.JobPostRequest{Title: e.Title, Location: e.Location, Salary: e.Salary, Draft: e.Draft})
		return nil, err
	case "mark_read":
		return nil, app.MarkNotificationRead(e.ID)
	case "save_privacy":
		return nil, app.SavePrivacy()
	default:
		return nil, fmt.Errorf("unsupported event type %q", e.Type)
	}
}
