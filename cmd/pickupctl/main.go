// pickupctl exercises the scheduling core against a live database from
// the command line. Output is JSON on stdout; the exit code is 0 on
// success and 1 on validation or availability failure.
//
//	pickupctl check-availability <locationId> <date> [time]
//	pickupctl impact-of-change <locationId> <proposedScheduleJson> [-exclude <scheduleId>]
//	pickupctl reconcile <householdId> <locationId> <desiredWindowsJson>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/config"
	dbpkg "github.com/foodbridge/pickup-scheduler/internal/db"
	schedDomain "github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	infraRepo "github.com/foodbridge/pickup-scheduler/internal/infra/repository"
	ucPickup "github.com/foodbridge/pickup-scheduler/internal/usecase/pickup"
	ucSchedule "github.com/foodbridge/pickup-scheduler/internal/usecase/schedule"
)

func main() {
	if len(os.Args) < 2 {
		fail(fmt.Errorf("usage: pickupctl <check-availability|impact-of-change|reconcile> ..."))
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	repo := infraRepo.NewPickupGormRepository(db)
	clk := clock.System{}
	ctx := context.Background()

	switch os.Args[1] {
	case "check-availability":
		checkAvailability(ctx, repo, os.Args[2:])
	case "impact-of-change":
		impactOfChange(ctx, repo, clk, os.Args[2:])
	case "reconcile":
		reconcile(ctx, repo, clk, os.Args[2:])
	default:
		fail(fmt.Errorf("unknown command %q", os.Args[1]))
	}
}

func checkAvailability(ctx context.Context, repo *infraRepo.PickupGormRepository, args []string) {
	if len(args) < 2 {
		fail(fmt.Errorf("usage: check-availability <locationId> <date> [time]"))
	}

	locationID := parseID(args[0])
	date, err := clock.ParseLocalDate(args[1])
	if err != nil {
		fail(err)
	}

	schedules, err := repo.ListSchedules(ctx, locationID)
	if err != nil {
		fail(err)
	}

	if len(args) >= 3 {
		result := schedDomain.IsTimeAvailable(date, args[2], schedules)
		emit(result, result.Available)
		return
	}

	result := schedDomain.IsDateAvailable(date, schedules)
	emit(result, result.Available)
}

func impactOfChange(ctx context.Context, repo *infraRepo.PickupGormRepository, clk clock.Clock, args []string) {
	fs := flag.NewFlagSet("impact-of-change", flag.ExitOnError)
	exclude := fs.Uint("exclude", 0, "schedule id being edited")

	if len(args) < 2 {
		fail(fmt.Errorf("usage: impact-of-change <locationId> <proposedScheduleJson> [-exclude <scheduleId>]"))
	}
	locationID := parseID(args[0])

	var proposed ucSchedule.ScheduleInput
	if err := json.Unmarshal([]byte(args[1]), &proposed); err != nil {
		fail(fmt.Errorf("invalid schedule json: %w", err))
	}
	_ = fs.Parse(args[2:])

	impact := ucSchedule.NewCheckScheduleImpact(repo, clk)
	affected, err := impact.Change(ctx, locationID, proposed, uint(*exclude))
	if err != nil {
		fail(err)
	}

	emit(map[string]int{"pickups_affected": affected}, true)
}

func reconcile(ctx context.Context, repo *infraRepo.PickupGormRepository, clk clock.Clock, args []string) {
	if len(args) < 3 {
		fail(fmt.Errorf("usage: reconcile <householdId> <locationId> <desiredWindowsJson>"))
	}

	householdID := parseID(args[0])
	locationID := parseID(args[1])

	var windows []ucPickup.PickupWindowInput
	if err := json.Unmarshal([]byte(args[2]), &windows); err != nil {
		fail(fmt.Errorf("invalid windows json: %w", err))
	}

	recompute := ucPickup.NewRecomputeOutsideHours(repo, clk)
	update := ucPickup.NewUpdateHouseholdSchedule(repo, clk, nil, recompute, nil)

	result, err := update.Execute(ctx, ucPickup.UpdateHouseholdScheduleInput{
		HouseholdID: householdID,
		LocationID:  locationID,
		Windows:     windows,
	})
	if err != nil {
		fail(err)
	}

	emit(result, true)
}

func parseID(s string) uint {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fail(fmt.Errorf("invalid id %q", s))
	}
	return uint(v)
}

func emit(v any, ok bool) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
	if !ok {
		os.Exit(1)
	}
}

func fail(err error) {
	out, _ := json.Marshal(map[string]string{"error": err.Error()})
	fmt.Fprintln(os.Stderr, string(out))
	os.Exit(1)
}
