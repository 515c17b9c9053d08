// Package cli implements the interactive terminal client: a small REPL over
// the taskvault REST API.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/taskvault/internal/client/api"
	"github.com/dmitrijs2005/taskvault/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	reader   *bufio.Reader
	userName string

	// lastList caches the most recent listing so view/update/delete can
	// address tasks by their printed number.
	lastList []api.Task
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}

// taskByNumber resolves a 1-based number from the last listing.
func (a *App) taskByNumber(arg string) (*api.Task, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.lastList) {
		return nil, fmt.Errorf("no task with number %q, run 'list' first", arg)
	}
	return &a.lastList[n-1], nil
}
