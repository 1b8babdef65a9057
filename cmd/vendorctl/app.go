package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ibeloyar/chawp-vendor/internal/client"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/internal/session"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	defaultAPIAddress = "http://localhost:8080"
	sessionDirName    = ".chawp-vendor"
)

var errNotSignedIn = errors.New("not signed in, run `vendorctl login` first")

// env - то, что нужно каждой команде: сессия и клиент API
type env struct {
	session *session.Session
	api     *client.Client
	out     io.Writer
}

func newApp(out io.Writer, lg *zap.SugaredLogger) *cli.App {
	var e env

	return &cli.App{
		Name:      "vendorctl",
		Usage:     "manage your chawp vendor account from the terminal",
		Writer:    out,
		ErrWriter: out,
		// код выхода выставляет main, а не библиотека
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "vendor API address",
				Value:   defaultAPIAddress,
				EnvVars: []string{"VENDOR_API_ADDRESS"},
			},
			&cli.StringFlag{
				Name:    "session-dir",
				Usage:   "directory holding the session and vendor cache (default ~/" + sessionDirName + ")",
				EnvVars: []string{"VENDOR_SESSION_DIR"},
			},
		},
		Before: func(c *cli.Context) error {
			dir := c.String("session-dir")
			if dir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("resolve session dir: %w", err)
				}
				dir = filepath.Join(home, sessionDirName)
			}

			store, err := session.NewFileStore(dir)
			if err != nil {
				return err
			}

			e.session = session.New(store, lg)
			if _, err := e.session.Restore(); err != nil {
				lg.Warnf("failed to restore session: %v", err)
			}

			e.api = client.New(c.String("api"), e.session.Token)
			e.out = out
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "login",
				Usage:     "sign in with email and password",
				ArgsUsage: "<email> <password>",
				Action:    e.login,
			},
			{
				Name:   "logout",
				Usage:  "sign out and clear the local cache",
				Action: e.logout,
			},
			{
				Name:   "whoami",
				Usage:  "show the signed-in vendor from the local cache",
				Action: e.whoami,
			},
			{
				Name:   "profile",
				Usage:  "fetch the vendor profile and refresh the cache",
				Action: e.profile,
			},
			{
				Name:   "stats",
				Usage:  "show dashboard stats",
				Action: e.stats,
			},
			{
				Name:  "orders",
				Usage: "list and move orders through their lifecycle",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "list orders, newest first",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "status", Usage: "only orders in this status"},
							&cli.IntFlag{Name: "limit", Usage: "maximum number of orders, 0 for all"},
						},
						Action: e.listOrders,
					},
					transitionCommand("accept", "confirm a pending order", func(api *client.Client) transitionFunc { return api.AcceptOrder }, &e),
					transitionCommand("decline", "cancel an order", func(api *client.Client) transitionFunc { return api.DeclineOrder }, &e),
					transitionCommand("preparing", "mark an order as being prepared", func(api *client.Client) transitionFunc { return api.MarkOrderPreparing }, &e),
					transitionCommand("ready", "mark an order as ready", func(api *client.Client) transitionFunc { return api.MarkOrderReady }, &e),
					{
						Name:      "transition",
						Usage:     "move an order to any vendor status",
						ArgsUsage: "<order-id> <status>",
						Action:    e.transitionOrder,
					},
				},
			},
		},
	}
}

func (e *env) login(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: vendorctl login <email> <password>", 2)
	}

	result, err := e.api.SignIn(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	e.session.OnSignIn(session.Identity{
		UserID:   result.User.ID,
		VendorID: result.Vendor.ID,
		Email:    result.User.Email,
		Token:    result.Token,
	}, result.Vendor)

	fmt.Fprintf(e.out, "signed in as %s (%s)\n", result.Vendor.Name, result.User.Email)
	return nil
}

func (e *env) logout(c *cli.Context) error {
	e.session.OnSignOut()
	fmt.Fprintln(e.out, "signed out")
	return nil
}

func (e *env) whoami(c *cli.Context) error {
	identity, ok := e.session.Identity()
	if !ok {
		return errNotSignedIn
	}

	fmt.Fprintf(e.out, "email:  %s\n", identity.Email)
	if vendor, ok := e.session.Vendor(); ok {
		renderVendor(e.out, vendor)
	}
	return nil
}

func (e *env) profile(c *cli.Context) error {
	if err := e.requireSession(); err != nil {
		return err
	}

	vendor, err := e.api.GetProfile(c.Context)
	if err != nil {
		return e.handleAPIError(err)
	}

	e.session.UpdateVendor(*vendor)
	renderVendor(e.out, *vendor)
	return nil
}

func (e *env) stats(c *cli.Context) error {
	if err := e.requireSession(); err != nil {
		return err
	}

	stats, err := e.api.GetStats(c.Context)
	if err != nil {
		return e.handleAPIError(err)
	}

	renderStats(e.out, *stats)
	return nil
}

func (e *env) listOrders(c *cli.Context) error {
	if err := e.requireSession(); err != nil {
		return err
	}

	filter := model.OrderFilter{Limit: c.Int("limit")}
	if raw := c.String("status"); raw != "" {
		status, err := model.ParseOrderStatus(raw)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		filter.Status = status
	}

	orders, err := e.api.GetOrders(c.Context, filter)
	if err != nil {
		return e.handleAPIError(err)
	}

	renderOrders(e.out, orders)
	return nil
}

func (e *env) transitionOrder(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: vendorctl orders transition <order-id> <status>", 2)
	}
	if err := e.requireSession(); err != nil {
		return err
	}

	status, err := model.ParseOrderStatus(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	result, err := e.api.TransitionOrder(c.Context, c.Args().Get(0), status)
	return e.reportTransition(result, err)
}

type transitionFunc func(ctx context.Context, orderID string) (*model.TransitionResult, error)

func transitionCommand(name, usage string, pick func(api *client.Client) transitionFunc, e *env) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<order-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: vendorctl orders "+name+" <order-id>", 2)
			}
			if err := e.requireSession(); err != nil {
				return err
			}

			result, err := pick(e.api)(c.Context, c.Args().First())
			return e.reportTransition(result, err)
		},
	}
}

// reportTransition печатает результат; неуспешная смена статуса - ошибка команды, без повторов
func (e *env) reportTransition(result *model.TransitionResult, err error) error {
	if err != nil {
		return e.handleAPIError(err)
	}
	if !result.Success {
		return cli.Exit("transition failed: "+result.Error, 1)
	}

	if result.Data != nil {
		fmt.Fprintf(e.out, "order %s is now %s\n", result.Data.ID, result.Data.Status)
	}
	return nil
}

func (e *env) requireSession() error {
	if _, ok := e.session.Identity(); !ok {
		return errNotSignedIn
	}
	return nil
}

func (e *env) handleAPIError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		e.session.OnSignOut()
		return errors.New("session expired, run `vendorctl login` again")
	}

	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return cli.Exit(apiErr.Message+" (HTTP "+strconv.Itoa(apiErr.Code)+")", 1)
	}
	return err
}
