package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/zealcatalyst/zeal-client/internal/backend"
	"github.com/zealcatalyst/zeal-client/internal/config"
	"github.com/zealcatalyst/zeal-client/internal/domain"
	"github.com/zealcatalyst/zeal-client/internal/logger"
	"github.com/zealcatalyst/zeal-client/internal/session"
	"github.com/zealcatalyst/zeal-client/internal/views"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 1.5 Init Logger
	logger.Init()

	// 2. Wire session store + API client. The store is the client's
	// token source, so every request carries the current bearer token.
	var store *session.Store
	client := backend.NewClient(cfg.APIBaseURL, backend.TokenFunc(func() string {
		if store == nil {
			return ""
		}
		return store.Token()
	}), backend.ClientConfig{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	store = session.NewStore(client, session.NewFileStorage(cfg.TokenFile))

	ctx := context.Background()
	store.Initialize(ctx)

	if err := run(ctx, store, client, os.Args[1:]); err != nil {
		zlog.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", backend.Message(err, err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, store *session.Store, client *backend.Client, args []string) error {
	if len(args) == 0 {
		return usage()
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		user, err := store.Login(ctx, session.LoginInput{Email: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		return printJSON(user)

	case "logout":
		store.Logout()
		fmt.Println("logged out")
		return nil

	case "me":
		user := store.User()
		if user == nil {
			return fmt.Errorf("not logged in")
		}
		return printJSON(user)

	case "tutors":
		filter := backend.TutorFilter{}
		if len(args) > 1 {
			filter.Search = args[1]
		}
		tutors, err := client.ListTutors(ctx, filter)
		if err != nil {
			return err
		}
		return printJSON(tutors)

	case "bookings":
		role := domain.RoleStudent
		if user := store.User(); user != nil {
			role = user.Role
		}
		dash := views.NewDashboard(client, role)
		if err := dash.Refresh(ctx); err != nil {
			return err
		}
		return printJSON(map[string]interface{}{
			"upcoming":        dash.Upcoming(),
			"past":            dash.Past(),
			"pending_ratings": dash.PendingRatings(),
		})

	case "blog":
		browser := views.NewBlogBrowser(client)
		if len(args) > 1 {
			browser.SetSearch(args[1])
		}
		if err := browser.Load(ctx); err != nil {
			return err
		}
		return printJSON(map[string]interface{}{
			"hero": browser.HeroPosts(),
			"grid": browser.GridPosts(),
			"page": browser.Page(),
		})

	default:
		return usage()
	}
}

func usage() error {
	return fmt.Errorf("usage: zeal-client <login|logout|me|tutors|bookings|blog> [args]")
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
