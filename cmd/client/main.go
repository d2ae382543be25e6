package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"codecontest_client/internal/api"
	"codecontest_client/internal/app/service"
	"codecontest_client/internal/app/state"
	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"
	"codecontest_client/internal/platform/config"
	"codecontest_client/internal/platform/session"
)

type app struct {
	cfg       *config.Config
	client    *api.Client
	sessions  *session.Store
	selection *state.Selection

	auth    *service.AuthService
	browser *service.BrowserService
	creator *service.CreatorService
	ranking *service.RankingService

	contest    *service.ContestSessionService
	submission *service.SubmissionService

	contests  []service.ContestSummary
	questions []model.Question

	in *bufio.Scanner
}

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Restore persisted session
	sessions := session.NewStore(cfg.SessionFile)
	if user, ok := sessions.Current(); ok {
		fmt.Printf("Signed in as %s.\n", user.Username)
	}

	// 3. API client and shared selection
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sessions.Token)
	selection := state.NewSelection()

	a := &app{
		cfg:       cfg,
		client:    client,
		sessions:  sessions,
		selection: selection,
		auth:      service.NewAuthService(client, sessions),
		browser:   service.NewBrowserService(client, selection),
		creator:   service.NewCreatorService(client),
		ranking:   service.NewRankingService(client),
		in:        bufio.NewScanner(os.Stdin),
	}

	fmt.Println("CodeContest client. Type 'help' for commands.")
	a.loop()
}

func (a *app) loop() {
	for {
		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPTimeout)
		err := a.dispatch(ctx, cmd, args)
		cancel()

		switch {
		case err == nil:
		case errors.Is(err, common.ErrNoSelection):
			fmt.Println("Nothing selected; back to the contest list. Run 'contests'.")
		default:
			fmt.Printf("Something went wrong: %v\n", err)
		}
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp()
	case "exit", "quit":
		os.Exit(0)
	case "login":
		return a.login(ctx)
	case "signup":
		return a.signup(ctx)
	case "logout":
		return a.auth.Logout(ctx)
	case "whoami":
		if user, ok := a.auth.CurrentUser(); ok {
			fmt.Printf("%s <%s> (%s)\n", user.Username, user.Email, user.Role)
		} else {
			fmt.Println("Not signed in.")
		}
	case "contests":
		return a.listContests(ctx, args)
	case "open":
		return a.openContest(ctx, args)
	case "start":
		return a.startContest(ctx)
	case "questions":
		return a.listQuestions(ctx)
	case "question":
		return a.openQuestion(args)
	case "lang":
		return a.setLanguage(args)
	case "attach":
		return a.attach(args)
	case "cases":
		return a.showCases()
	case "submit":
		return a.submit(ctx)
	case "rankings":
		return a.showRankings(ctx, args)
	case "create":
		return a.createContest(ctx)
	default:
		fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
	}
	return nil
}

func (a *app) printHelp() {
	fmt.Println(`Commands:
  login | signup | logout | whoami
  contests [active|upcoming|ended]   list contests
  open <n>                           open contest n from the last listing
  start                              start the opened contest (countdown)
  questions                          list the contest's questions
  question <n>                       open question n
  lang <python|java|cpp>             pick submission language
  attach <file>                      attach a solution file
  cases                              show test cases and verdicts
  submit                             submit the attached file
  rankings [contest-id]              show the score table
  create                             author a new contest
  exit`)
}

func (a *app) prompt(label string) string {
	fmt.Print(label + ": ")
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) login(ctx context.Context) error {
	creds := service.Credentials{
		Email:    a.prompt("Email"),
		Password: a.prompt("Password"),
	}
	user, err := a.auth.Login(ctx, creds)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome back, %s.\n", user.Username)
	return nil
}

func (a *app) signup(ctx context.Context) error {
	creds := service.Credentials{
		Username:        a.prompt("Username"),
		Email:           a.prompt("Email"),
		Password:        a.prompt("Password"),
		ConfirmPassword: a.prompt("Confirm password"),
		Role:            a.prompt("Role (student/creator)"),
	}
	user, err := a.auth.Signup(ctx, creds)
	if err != nil {
		return err
	}
	fmt.Printf("Account created. Welcome, %s.\n", user.Username)
	return nil
}

func (a *app) listContests(ctx context.Context, args []string) error {
	all, err := a.browser.Browse(ctx)
	if err != nil {
		return err
	}
	var filter model.ContestStatus
	if len(args) > 0 && args[0] != "all" {
		filter = model.ContestStatus(args[0])
	}
	a.contests = service.FilterByStatus(all, filter)
	if len(a.contests) == 0 {
		fmt.Println("No contests.")
		return nil
	}
	for i, c := range a.contests {
		fmt.Printf("%2d. [%s] %s  %d participants, %d questions, %s - %s\n",
			i+1, c.Status, c.Title, c.Participants, c.TotalQuestions,
			c.StartTime.Local().Format("Jan 2 15:04"), c.EndTime.Local().Format("Jan 2 15:04"))
	}
	return nil
}

func (a *app) openContest(ctx context.Context, args []string) error {
	if _, ok := a.auth.CurrentUser(); !ok {
		fmt.Println("Sign in first ('login' or 'signup').")
		return nil
	}
	i, err := pickIndex(args, len(a.contests))
	if err != nil {
		return err
	}
	picked := a.contests[i]
	a.browser.Pick(picked)
	a.contest = service.NewContestSessionService(
		a.client, a.selection, a.sessions, a.cfg.CountdownTicks, a.cfg.TickInterval)

	decision, err := a.contest.Enter()
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\n", picked.Title, picked.Description)
	if decision.ShowRanking {
		fmt.Println("This contest has ended; showing rankings.")
		return a.showRankings(ctx, nil)
	}
	if decision.Phase == service.PhaseActive {
		fmt.Println("Already joined; continuing.")
		return a.listQuestions(ctx)
	}
	fmt.Println("Run 'start' to join and begin.")
	return nil
}

func (a *app) startContest(ctx context.Context) error {
	if a.contest == nil {
		return common.ErrNoSelection
	}
	err := a.contest.Begin(ctx, func(remaining int) {
		if remaining > 0 {
			fmt.Printf("%d...\n", remaining)
		} else {
			fmt.Println("Go!")
		}
	})
	if err != nil {
		return err
	}
	return a.listQuestions(ctx)
}

func (a *app) listQuestions(ctx context.Context) error {
	if a.contest == nil {
		return common.ErrNoSelection
	}
	questions, err := a.contest.Questions(ctx)
	if err != nil {
		return err
	}
	a.questions = questions
	if len(questions) == 0 {
		fmt.Println("This contest has no questions.")
		return nil
	}
	for i, q := range questions {
		fmt.Printf("%2d. [%s] %s  %d points\n", i+1, q.Difficulty, q.Title, q.Points)
	}
	return nil
}

func (a *app) openQuestion(args []string) error {
	if a.contest == nil {
		return common.ErrNoSelection
	}
	i, err := pickIndex(args, len(a.questions))
	if err != nil {
		return err
	}
	q := a.questions[i]
	a.contest.PickQuestion(q)
	a.submission = service.NewSubmissionService(a.client, q)
	fmt.Printf("%s\n\n%s\n\nTime: %ds  Memory: %dMB  Points: %d\n",
		q.Title, q.Description, q.SubmitTimeoutSeconds(), q.MemoryLimit, q.Points)
	return a.showCases()
}

func (a *app) setLanguage(args []string) error {
	if a.submission == nil {
		return common.ErrNoSelection
	}
	if len(args) != 1 {
		return common.Errorf("usage: lang <python|java|cpp>: %w", common.ErrBadRequest)
	}
	return a.submission.SetLanguage(model.Language(args[0]))
}

func (a *app) attach(args []string) error {
	if a.submission == nil {
		return common.ErrNoSelection
	}
	if len(args) != 1 {
		return common.Errorf("usage: attach <file>: %w", common.ErrBadRequest)
	}
	matches, err := a.submission.AttachFile(args[0])
	if err != nil {
		return err
	}
	if !matches {
		fmt.Println("Note: file extension does not match the selected language.")
	}
	fmt.Println("File attached.")
	return nil
}

func (a *app) showCases() error {
	if a.submission == nil {
		return common.ErrNoSelection
	}
	visible, hidden := a.submission.Cases()
	for _, tc := range visible {
		fmt.Printf("Sample %d [%s]\n  input: %s\n  expected: %s\n",
			tc.Index+1, tc.Verdict, tc.Input, tc.ExpectedOutput)
		if tc.ActualOutput != "" {
			fmt.Printf("  yours: %s (%ss)\n", tc.ActualOutput, tc.ExecutionTime)
		}
	}
	for _, tc := range hidden {
		fmt.Printf("Hidden %d [%s]", tc.Index+1, tc.Verdict)
		if tc.ExecutionTime != "" {
			fmt.Printf(" (%ss)", tc.ExecutionTime)
		}
		fmt.Println()
	}
	return nil
}

func (a *app) submit(ctx context.Context) error {
	if a.submission == nil {
		return common.ErrNoSelection
	}
	fmt.Println("Running tests...")
	resp, err := a.submission.Submit(ctx)
	if err != nil {
		_ = a.showCases()
		return err
	}
	fmt.Println(resp.Message)
	return a.showCases()
}

func (a *app) showRankings(ctx context.Context, args []string) error {
	contestID := ""
	if len(args) > 0 {
		contestID = args[0]
	} else if contest, ok := a.selection.Contest(); ok {
		contestID = contest.ID
	}
	rankings, err := a.ranking.Rankings(ctx, contestID)
	if err != nil {
		return err
	}
	fmt.Printf("%4s  %-20s %7s %12s\n", "Rank", "Username", "Score", "Time (ms)")
	for i, r := range rankings {
		fmt.Printf("%4d  %-20s %7d %12d\n", i+1, r.Username, r.Score, r.TotalTimeTaken)
	}
	return nil
}

func (a *app) createContest(ctx context.Context) error {
	if _, ok := a.auth.CurrentUser(); !ok {
		fmt.Println("Sign in first ('login' or 'signup').")
		return nil
	}
	draft := a.creator.NewDraft()
	draft.Title = a.prompt("Contest title")
	draft.Description = a.prompt("Description")
	start, err := time.Parse(time.RFC3339, a.prompt("Start time (RFC3339)"))
	if err != nil {
		return common.Errorf("start time: %w", common.ErrValidation)
	}
	end, err := time.Parse(time.RFC3339, a.prompt("End time (RFC3339)"))
	if err != nil {
		return common.Errorf("end time: %w", common.ErrValidation)
	}
	draft.StartTime, draft.EndTime = start, end

	for i := 0; ; {
		q := &draft.Questions[i]
		fmt.Printf("-- Question %d --\n", i+1)
		q.Title = a.prompt("Title")
		q.Description = a.prompt("Description")
		q.Points = atoiOr(a.prompt("Points"), q.Points)
		q.TimeLimit = atoiOr(a.prompt("Time limit (s)"), q.TimeLimit)
		q.Input = a.prompt("Sample input (cases joined with ###)")
		q.ExpectedOutput = a.prompt("Expected output (cases joined with ###)")
		if !strings.EqualFold(a.prompt("Add another question? (y/N)"), "y") {
			break
		}
		i = a.creator.AddQuestion(&draft)
	}

	if err := a.creator.Save(ctx, draft); err != nil {
		return err
	}
	log.Printf("contest %q created (slug %s)", draft.Title, a.creator.Slug(draft))
	fmt.Println("Contest created successfully!")
	return nil
}

func pickIndex(args []string, n int) (int, error) {
	if len(args) != 1 {
		return 0, common.Errorf("expected one index argument: %w", common.ErrBadRequest)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 1 || i > n {
		return 0, common.Errorf("no entry %q in the last listing: %w", args[0], common.ErrBadRequest)
	}
	return i - 1, nil
}

func atoiOr(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return fallback
}
