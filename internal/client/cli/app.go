// Package cli wires the newsadmin command tree: repositories over one HTTP
// gateway, a persisted session, and prompt-driven forms.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/config"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/articles"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/auth"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/categories"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/leaves"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/locations"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/media"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/public"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/quizresults"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/quizzes"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/warriors"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/session"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/logging"
)

// App owns the shared collaborators behind every command.
type App struct {
	cfg  *config.Config
	log  logging.Logger
	sess *session.Store

	warriors    warriors.Repository
	categories  categories.Repository
	articles    articles.Repository
	quizzes     quizzes.Repository
	quizResults quizresults.Repository
	leaves      leaves.Repository
	locations   locations.Repository
	media       media.Repository
	auth        auth.Repository
	public      public.Repository

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the full dependency graph from one config.
func NewApp(cfg *config.Config) *App {
	log := logging.NewTerminal(os.Stderr, slog.LevelInfo)
	sess := session.NewStore(cfg.TokenFile)

	app := &App{
		cfg:    cfg,
		log:    log,
		sess:   sess,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	gw := api.New(cfg.ServerBaseURL, cfg.RequestTimeout, sess, log,
		api.WithUnauthorizedHook(func() {
			fmt.Fprintln(app.out, "Session expired. Run `newsadmin login` to sign in again.")
		}))

	app.warriors = warriors.NewHTTPRepository(gw)
	app.categories = categories.NewHTTPRepository(gw)
	app.articles = articles.NewHTTPRepository(gw)
	app.quizzes = quizzes.NewHTTPRepository(gw)
	app.quizResults = quizresults.NewHTTPRepository(gw)
	app.leaves = leaves.NewHTTPRepository(gw)
	app.locations = locations.NewHTTPRepository(gw)
	app.media = media.NewHTTPRepository(gw)
	app.auth = auth.NewHTTPRepository(gw)
	app.public = public.NewHTTPRepository(gw)
	return app
}

func (a *App) loggedIn() bool {
	return a.sess.Token() != ""
}

// requireLogin is the pre-run gate on every admin command.
func (a *App) requireLogin() error {
	if !a.loggedIn() {
		return fmt.Errorf("not signed in; run `newsadmin login` first")
	}
	return nil
}
