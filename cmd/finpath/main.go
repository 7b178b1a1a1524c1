// Command finpath is a small terminal client for a FinPath server. It keeps
// its session in a JSON file under the user config dir, mirroring what the
// browser dashboard persists.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rafaelgavarron/Fintech/pkg/client"
	"github.com/rafaelgavarron/Fintech/pkg/logger"
	"github.com/rafaelgavarron/Fintech/pkg/money"
	"github.com/rafaelgavarron/Fintech/pkg/session"
)

const usage = `usage: finpath [-server URL] <command> [args]

commands:
  login    -email X -password X      sign in and persist the session
  register -name X -email X -password X
  logout                             clear the stored session
  orgs                               list the organizations you belong to
  switch   -org ID                   change the active organization
  summary                            totals for the active organization
`

func main() {
	serverURL := flag.String("server", envOr("FINPATH_SERVER", "http://localhost:8080"), "server base URL")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	log := logger.Init(logger.Options{Level: envOr("LOG_LEVEL", "warn"), Pretty: true, Output: os.Stderr})

	store, err := session.NewFileStore(storePath())
	if err != nil {
		log.Fatal().Err(err).Msg("open session store")
	}

	api := client.New(*serverURL)
	sess := session.New(api, store, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if err := run(ctx, sess, api, cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "finpath: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, sess *session.Session, api *client.Client, cmd string, args []string) error {
	switch cmd {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		fs.Parse(args)
		if *email == "" || *password == "" {
			return fmt.Errorf("login requires -email and -password")
		}
		if err := sess.Login(ctx, *email, *password); err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%s)\n", sess.User().Name, sess.User().Email)
		fmt.Printf("active organization: %s\n", sess.CurrentOrganization().Name)
		return nil

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		fs.Parse(args)
		if *name == "" || *email == "" || *password == "" {
			return fmt.Errorf("register requires -name, -email and -password")
		}
		if err := sess.Register(ctx, *name, *email, *password); err != nil {
			return err
		}
		fmt.Printf("registered %s, active organization: %s\n", *email, sess.CurrentOrganization().Name)
		return nil

	case "logout":
		if err := sess.Logout(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil

	case "orgs":
		if err := requireSession(ctx, sess); err != nil {
			return err
		}
		for _, org := range sess.Organizations() {
			marker := " "
			if cur := sess.CurrentOrganization(); cur != nil && cur.ID == org.ID {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, org.ID, org.Name)
		}
		return nil

	case "switch":
		fs := flag.NewFlagSet("switch", flag.ExitOnError)
		orgID := fs.String("org", "", "organization id")
		fs.Parse(args)
		if *orgID == "" {
			return fmt.Errorf("switch requires -org")
		}
		if err := requireSession(ctx, sess); err != nil {
			return err
		}
		org, err := api.Organization(ctx, *orgID)
		if err != nil {
			return err
		}
		if err := sess.SetCurrentOrganization(ctx, *org); err != nil {
			return err
		}
		fmt.Printf("active organization: %s\n", org.Name)
		return nil

	case "summary":
		if err := requireSession(ctx, sess); err != nil {
			return err
		}
		return printSummary(ctx, sess, api)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printSummary(ctx context.Context, sess *session.Session, api *client.Client) error {
	org := sess.CurrentOrganization()
	if org == nil {
		return fmt.Errorf("no active organization")
	}

	incomes, err := api.IncomeTotalByOrganization(ctx, org.ID)
	if err != nil {
		return err
	}
	expenses, err := api.ExpenseTotalByOrganization(ctx, org.ID)
	if err != nil {
		return err
	}
	investments, err := api.InvestmentTotalByOrganization(ctx, org.ID)
	if err != nil {
		return err
	}

	fmt.Printf("organization: %s\n", org.Name)
	fmt.Printf("  incomes:     %s\n", money.FormatBRL(incomes))
	fmt.Printf("  expenses:    %s\n", money.FormatBRL(expenses))
	fmt.Printf("  investments: %s\n", money.FormatBRL(investments))
	fmt.Printf("  balance:     %s\n", money.FormatBRL(incomes-expenses))

	goals, err := api.GoalsByOrganization(ctx, org.ID)
	if err != nil {
		return err
	}
	for _, goal := range goals {
		saved, err := api.GoalContributionTotal(ctx, goal.ID)
		if err != nil {
			return err
		}
		fmt.Printf("  goal %-20s %s of %s\n", goal.Name, money.FormatBRL(saved), money.FormatBRL(goal.DesiredAmount))
	}
	return nil
}

func requireSession(ctx context.Context, sess *session.Session) error {
	if err := sess.Restore(ctx); err != nil {
		return err
	}
	if !sess.LoggedIn() {
		return fmt.Errorf("not signed in, run: finpath login")
	}
	return nil
}

func storePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "finpath", "session.json")
	}
	return filepath.Join(os.TempDir(), "finpath-session.json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
