package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/config"
)

// NewRootCmd builds the newsadmin command tree. The app is wired lazily in
// PersistentPreRunE so flag overrides are applied before anything dials out.
func NewRootCmd() *cobra.Command {
	var (
		app        *App
		configPath string
		serverURL  string
		mediaURL   string
		pageSize   int
	)

	root := &cobra.Command{
		Use:           "newsadmin",
		Short:         "Quản trị trang tin Lữ đoàn 72",
		Long:          "Terminal admin client for the ludoan72 news site: warriors, articles, categories, leaves, quizzes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.ServerBaseURL = serverURL
			}
			if mediaURL != "" {
				cfg.MediaBaseURL = mediaURL
			}
			if pageSize > 0 {
				cfg.PageSize = pageSize
			}
			app = NewApp(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON config file")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL")
	root.PersistentFlags().StringVar(&mediaURL, "media-base", "", "base URL for relative media paths")
	root.PersistentFlags().IntVar(&pageSize, "page-size", 0, "default list page size")

	root.AddCommand(
		newLoginCmd(&app),
		newLogoutCmd(&app),
		newWarriorsCmd(&app),
		newCategoriesCmd(&app),
		newArticlesCmd(&app),
		newLeavesCmd(&app),
		newQuizzesCmd(&app),
		newQuizResultsCmd(&app),
		newNewsCmd(&app),
	)
	return root
}

func newLoginCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			username, err := GetSimpleText(a.reader, "Username", a.out)
			if err != nil {
				return err
			}
			password, err := GetPassword(a.out, "Password: ")
			if err != nil {
				return err
			}

			token, err := a.auth.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err := a.sess.Set(token); err != nil {
				return fmt.Errorf("store token: %w", err)
			}
			fmt.Fprintln(a.out, "Signed in.")
			return nil
		},
	}
}

func newLogoutCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			a.sess.Clear()
			fmt.Fprintln(a.out, "Signed out.")
			return nil
		},
	}
}

// warnExpiring nudges the user before a mid-form expiry loses their input.
func (a *App) warnExpiring() {
	if a.loggedIn() && a.sess.ExpiresWithin(2*time.Minute) {
		fmt.Fprintln(a.out, "Warning: session expires in under two minutes; consider `newsadmin login` first.")
	}
}
