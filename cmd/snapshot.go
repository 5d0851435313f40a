package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/matchup/core/engine"
	"github.com/ingyamilmolinar/matchup/core/model"
	"github.com/ingyamilmolinar/matchup/internal/config"
	"github.com/ingyamilmolinar/matchup/internal/snapshot"
)

var (
	ErrBadConnect  = errors.New("connection must look like LEFT:RIGHT")
	ErrUnknownItem = errors.New("unknown item id")
)

// connection is one scripted drag, by item id.
type connection struct {
	Left, Right model.ItemID
}

func parseConnection(s string) (connection, error) {
	l, r, ok := strings.Cut(s, ":")
	if !ok {
		return connection{}, fmt.Errorf("%q: %w", s, ErrBadConnect)
	}
	li, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil {
		return connection{}, fmt.Errorf("%q: %w", s, ErrBadConnect)
	}
	ri, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return connection{}, fmt.Errorf("%q: %w", s, ErrBadConnect)
	}
	return connection{Left: model.ItemID(li), Right: model.ItemID(ri)}, nil
}

// play drags from the left anchor of c to its right anchor.
func (c connection) play(e *engine.Engine) (engine.Outcome, error) {
	from, ok := model.FindAnchor(e.Anchors(), c.Left, model.SideLeft)
	if !ok {
		return engine.OutcomeNone, fmt.Errorf("left %d: %w", c.Left, ErrUnknownItem)
	}
	to, ok := model.FindAnchor(e.Anchors(), c.Right, model.SideRight)
	if !ok {
		return engine.OutcomeNone, fmt.Errorf("right %d: %w", c.Right, ErrUnknownItem)
	}
	e.GestureStart(from.Point())
	e.GestureMove(to.Point())
	return e.GestureEnd(to.Point()), nil
}

func newSnapshotCmd(cfg *config.Config) *cobra.Command {
	var (
		out      string
		connects []string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Play scripted connections headless and save the board as PNG",
		Example: `  matchup snapshot --seed 42 --connect 1:1 --connect 2:3 --out board.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg)
			e := newEngine(cfg, logger)

			for _, s := range connects {
				c, err := parseConnection(s)
				if err != nil {
					return err
				}
				outcome, err := c.play(e)
				if err != nil {
					return err
				}
				logger.Debugf("connect %s: %s", s, outcome)
			}

			res := e.Grade()
			if out == "" {
				out = fmt.Sprintf("round-%s.png", e.Round())
			}
			opt := snapshot.DefaultOptions()
			opt.Footer = res.Message()
			if err := snapshot.SavePNG(out, e, opt); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", res.Message(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path (default round-<id>.png)")
	cmd.Flags().StringArrayVar(&connects, "connect", nil, "LEFT:RIGHT item ids to connect, repeatable")
	return cmd
}
