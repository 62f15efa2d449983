package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"calorie-planner/cmd/bootstrap"
	"calorie-planner/config"
	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/identity"
	"calorie-planner/internal/usecase"

	"github.com/spf13/cobra"
)

type estimateOptions struct {
	req   dto.EstimateRequest
	token string
	wait  time.Duration
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "calories",
		Short:        "Calorie planner command line tools",
		SilenceUsage: true,
	}
	root.AddCommand(newEstimateCmd())
	return root
}

func newEstimateCmd() *cobra.Command {
	opts := &estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate daily calories and save them to your profile",
		Long: `Estimates the daily caloric need from age, gender, weight, height and
activity level. With --token the result is saved to the profile of the
signed-in user; without it nothing is stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := bootstrap.NewLogger(cfg.Log)
			// keep stdout for the result
			log.SetOutput(cmd.ErrOrStderr())

			ctx := cmd.Context()
			core, err := bootstrap.NewCore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer core.Close()

			ident := resolveIdentity(ctx, core.AuthUsecase.Authenticate, opts.token, opts.wait)
			return runEstimate(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), core.EstimationUsecase, ident, &opts.req)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.req.Age, "age", 0, "age in years")
	flags.StringVar(&opts.req.Gender, "gender", "male", "male or female")
	flags.Float64Var(&opts.req.Weight, "weight", 0, "weight in kg")
	flags.Float64Var(&opts.req.Height, "height", 0, "height in cm")
	flags.StringVar(&opts.req.Activity, "activity", "moderate", "sedentary, light, moderate, active or veryActive")
	flags.StringVar(&opts.token, "token", "", "access token of the signed-in user")
	flags.DurationVar(&opts.wait, "wait", 5*time.Second, "how long to wait for the sign-in state")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

type authenticateFunc func(ctx context.Context, accessToken string) (identity.Identity, string, error)

// resolveIdentity reports the token's identity through a Tracker and waits
// up to wait for it. On timeout, or when the token could not be looked up,
// the identity stays unresolved.
func resolveIdentity(ctx context.Context, authenticate authenticateFunc, token string, wait time.Duration) identity.Identity {
	tracker := identity.NewTracker()

	followCtx, stopFollow := context.WithCancel(ctx)
	defer stopFollow()

	waitCtx, stopWaiting := context.WithTimeout(ctx, wait)
	defer stopWaiting()

	events := make(chan identity.Identity, 1)
	go tracker.Follow(followCtx, events)

	go func() {
		if token == "" {
			events <- identity.Anonymous()
			return
		}
		ident, _, err := authenticate(followCtx, token)
		if err != nil && !ident.IsResolved() {
			// lookup failed; nothing will ever resolve it
			stopWaiting()
			return
		}
		if err != nil {
			ident = identity.Anonymous()
		}
		select {
		case events <- ident:
		case <-followCtx.Done():
		}
	}()

	if _, err := tracker.WaitResolved(waitCtx); err != nil {
		return identity.Unresolved()
	}
	return tracker.Current()
}

func runEstimate(ctx context.Context, out, errOut io.Writer, uc usecase.EstimationUsecase, ident identity.Identity, req *dto.EstimateRequest) error {
	result, err := uc.Estimate(ctx, ident, req)

	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		fields := make([]string, 0, len(validationErr.Fields))
		for field := range validationErr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(errOut, "invalid %s: %s\n", field, validationErr.Fields[field])
		}
		return err
	}

	var persistenceErr *usecase.PersistenceError
	if err != nil && !errors.As(err, &persistenceErr) {
		return err
	}

	fmt.Fprintf(out, "Estimated daily calories: %s kcal\n", result.Display)
	switch result.Persistence {
	case usecase.PersistenceSaved:
		fmt.Fprintln(out, "Saved to your profile.")
	case usecase.PersistenceNotAttempted:
		fmt.Fprintf(out, "Not saved (%s).\n", result.Identity)
	case usecase.PersistenceFailed:
		fmt.Fprintf(errOut, "warning: could not save to your profile: %v\n", persistenceErr.Err)
	}
	return nil
}
