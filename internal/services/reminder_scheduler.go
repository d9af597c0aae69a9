package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/models"
	"github.com/dale-waterworth/HealthyMe/internal/notify"
)

var ErrReminderConfigMissing = errors.New("reminder config missing")

type ReminderState string

const (
	ReminderStateDisabled         ReminderState = "disabled"
	ReminderStateArmed            ReminderState = "armed"
	ReminderStateWaitingForWindow ReminderState = "waiting-for-window"
	ReminderStateDue              ReminderState = "due"
	ReminderStateFired            ReminderState = "fired"
)

const suppressionLookback = 6 * time.Hour

type SchedulerProfileReader interface {
	FindByID(profileID uint) (models.Profile, error)
}

type SchedulerReminderRepository interface {
	FindByProfile(profileID uint) (models.ReminderConfig, bool, error)
	UpdateByID(configID uint, updates map[string]any) error
	ListEnabled() ([]models.ReminderConfig, error)
}

type SchedulerIntakeReader interface {
	ListByProfile(profileID uint, from *time.Time, to *time.Time) ([]models.IntakeEvent, error)
}

// ReminderScheduler drives the reminder loop. Each enabled profile owns
// exactly one pending wake timer; enabling replaces any previous timer and
// disabling cancels it, so timers never stack. The clock is injectable for
// tests.
type ReminderScheduler struct {
	profiles  SchedulerProfileReader
	reminders SchedulerReminderRepository
	intakes   SchedulerIntakeReader
	notifier  notify.Dispatcher
	location  *time.Location
	now       func() time.Time

	mu             sync.Mutex
	schedules      map[uint]*profileSchedule
	nextGeneration uint64
}

type profileSchedule struct {
	timer      *time.Timer
	state      ReminderState
	generation uint64
}

func NewReminderScheduler(profiles SchedulerProfileReader, reminders SchedulerReminderRepository, intakes SchedulerIntakeReader, notifier notify.Dispatcher, location *time.Location) *ReminderScheduler {
	if location == nil {
		location = time.Local
	}
	return &ReminderScheduler{
		profiles:  profiles,
		reminders: reminders,
		intakes:   intakes,
		notifier:  notifier,
		location:  location,
		now:       time.Now,
		schedules: make(map[uint]*profileSchedule),
	}
}

// Start re-arms every profile whose stored config is still enabled and wires
// timer teardown to context cancellation.
func (scheduler *ReminderScheduler) Start(ctx context.Context) {
	configs, err := scheduler.reminders.ListEnabled()
	if err != nil {
		log.Printf("reminders: restore on start failed: %v", err)
	} else {
		for _, config := range configs {
			if scheduler.notifier.RequestPermission() != notify.PermissionGranted {
				log.Printf("reminders: permission not granted, leaving profile %d unscheduled", config.ProfileID)
				continue
			}
			scheduler.replaceTimer(config.ProfileID, config)
		}
	}

	go func() {
		<-ctx.Done()
		scheduler.StopAll()
	}()
}

// Enable turns reminders on for the profile. It fails softly when the
// notification permission is not granted: the stored config is left untouched
// and false is returned, no schedule starts.
func (scheduler *ReminderScheduler) Enable(profileID uint) (bool, error) {
	if scheduler.notifier.RequestPermission() != notify.PermissionGranted {
		return false, nil
	}

	config, found, err := scheduler.reminders.FindByProfile(profileID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrReminderConfigMissing
	}

	if err := scheduler.reminders.UpdateByID(config.ID, map[string]any{"is_enabled": true}); err != nil {
		return false, err
	}
	config.IsEnabled = true

	scheduler.replaceTimer(profileID, config)
	return true, nil
}

// Disable cancels the profile's pending wake timer and persists the off
// switch. Intake history and the rest of the config survive.
func (scheduler *ReminderScheduler) Disable(profileID uint) error {
	scheduler.mu.Lock()
	if schedule, ok := scheduler.schedules[profileID]; ok {
		if schedule.timer != nil {
			schedule.timer.Stop()
		}
		delete(scheduler.schedules, profileID)
	}
	scheduler.mu.Unlock()

	config, found, err := scheduler.reminders.FindByProfile(profileID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return scheduler.reminders.UpdateByID(config.ID, map[string]any{"is_enabled": false})
}

// State reports the profile's current scheduling state.
func (scheduler *ReminderScheduler) State(profileID uint) ReminderState {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if schedule, ok := scheduler.schedules[profileID]; ok {
		return schedule.state
	}
	return ReminderStateDisabled
}

func (scheduler *ReminderScheduler) StopAll() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	for profileID, schedule := range scheduler.schedules {
		if schedule.timer != nil {
			schedule.timer.Stop()
		}
		delete(scheduler.schedules, profileID)
	}
}

// replaceTimer installs the single wake timer for the profile, cancelling any
// previous one.
func (scheduler *ReminderScheduler) replaceTimer(profileID uint, config models.ReminderConfig) {
	now := scheduler.now()
	wake := NextWakeAt(config, now, scheduler.location)

	state := ReminderStateWaitingForWindow
	if insideWindow(config, now, scheduler.location) {
		state = ReminderStateArmed
	}

	scheduler.mu.Lock()
	if existing, ok := scheduler.schedules[profileID]; ok && existing.timer != nil {
		existing.timer.Stop()
	}
	scheduler.nextGeneration++
	generation := scheduler.nextGeneration
	schedule := &profileSchedule{state: state, generation: generation}
	schedule.timer = time.AfterFunc(wake.Sub(now), func() {
		scheduler.onWake(profileID, generation)
	})
	scheduler.schedules[profileID] = schedule
	scheduler.mu.Unlock()

	if err := scheduler.reminders.UpdateByID(config.ID, map[string]any{"next_reminder": wake}); err != nil {
		log.Printf("reminders: persist next wake for profile %d failed: %v", profileID, err)
	}
}

func (scheduler *ReminderScheduler) onWake(profileID uint, generation uint64) {
	scheduler.mu.Lock()
	schedule, ok := scheduler.schedules[profileID]
	if !ok || schedule.generation != generation {
		// Cancelled or replaced after this timer fired; a stale wake must
		// not deliver or rearm.
		scheduler.mu.Unlock()
		return
	}
	schedule.state = ReminderStateDue
	scheduler.mu.Unlock()

	config, found, err := scheduler.reminders.FindByProfile(profileID)
	if err != nil || !found || !config.IsEnabled {
		if err != nil {
			log.Printf("reminders: load config for profile %d failed: %v", profileID, err)
		}
		scheduler.dropSchedule(profileID, generation)
		return
	}

	now := scheduler.now()
	if insideWindow(config, now, scheduler.location) {
		if err := scheduler.deliver(config, now); err != nil {
			// Degrade to silence rather than killing the loop.
			log.Printf("reminders: deliver for profile %d failed: %v", profileID, err)
		}
	}

	scheduler.rearm(profileID, generation, config)
}

// deliver runs the suppression check and fires the notification when it
// passes.
func (scheduler *ReminderScheduler) deliver(config models.ReminderConfig, now time.Time) error {
	profile, err := scheduler.profiles.FindByID(config.ProfileID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	lookback := now.Add(-suppressionLookback)
	recent, err := scheduler.intakes.ListByProfile(config.ProfileID, &lookback, nil)
	if err != nil {
		return fmt.Errorf("load recent intakes: %w", err)
	}

	if !ShouldRemind(profile.DailyWaterGoal, config, recent, now) {
		return nil
	}

	scheduler.notifier.Show("Hydration Reminder", randomReminderMessage(), notify.Options{
		Tag: fmt.Sprintf("hydration-reminder-%d", now.UnixNano()),
	})
	scheduler.markFired(config.ProfileID)

	return scheduler.reminders.UpdateByID(config.ID, map[string]any{"last_reminder": now})
}

func (scheduler *ReminderScheduler) markFired(profileID uint) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if schedule, ok := scheduler.schedules[profileID]; ok {
		schedule.state = ReminderStateFired
	}
}

// rearm perpetuates the loop after a wake, unless the schedule was cancelled
// or replaced while the wake was in flight.
func (scheduler *ReminderScheduler) rearm(profileID uint, generation uint64, config models.ReminderConfig) {
	scheduler.mu.Lock()
	schedule, ok := scheduler.schedules[profileID]
	current := ok && schedule.generation == generation
	scheduler.mu.Unlock()
	if !current {
		return
	}
	scheduler.replaceTimer(profileID, config)
}

func (scheduler *ReminderScheduler) dropSchedule(profileID uint, generation uint64) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if schedule, ok := scheduler.schedules[profileID]; ok && schedule.generation == generation {
		if schedule.timer != nil {
			schedule.timer.Stop()
		}
		delete(scheduler.schedules, profileID)
	}
}

// NextWakeAt computes the next wake instant for the config. Inside the
// notification window it is one interval from now; before the window it is
// today's opening; at or past the end hour it rolls to tomorrow's opening,
// including wakes that land after midnight.
func NextWakeAt(config models.ReminderConfig, now time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	local := now.In(location)

	switch hour := local.Hour(); {
	case hour < config.StartHour:
		return HourAtLocation(local, config.StartHour, location)
	case hour >= config.EndHour:
		return HourAtLocation(local, config.StartHour, location).AddDate(0, 0, 1)
	default:
		return local.Add(models.IntervalDuration(config.IntervalType))
	}
}

// ShouldRemind is the suppression policy. With no intake in the trailing six
// hours a reminder always fires. Otherwise the expected amount per interval is
// the daily goal spread over the window hours, scaled to the interval
// granularity, and the reminder is suppressed only when the single most recent
// intake covered at least twice that amount less than one interval ago.
func ShouldRemind(dailyGoal int, config models.ReminderConfig, recentNewestFirst []models.IntakeEvent, now time.Time) bool {
	if len(recentNewestFirst) == 0 {
		return true
	}

	windowHours := config.EndHour - config.StartHour
	if windowHours <= 0 || dailyGoal <= 0 {
		return true
	}

	expectedPerInterval := float64(dailyGoal) / float64(windowHours)
	switch config.IntervalType {
	case models.IntervalHalfHour:
		expectedPerInterval /= 2
	case models.IntervalFourHour:
		expectedPerInterval *= 4
	}

	lastIntake := recentNewestFirst[0]
	elapsed := now.Sub(lastIntake.Timestamp)
	if float64(lastIntake.Amount) >= expectedPerInterval*2 && elapsed < models.IntervalDuration(config.IntervalType) {
		return false
	}
	return true
}

func insideWindow(config models.ReminderConfig, now time.Time, location *time.Location) bool {
	if location == nil {
		location = time.UTC
	}
	hour := now.In(location).Hour()
	return hour >= config.StartHour && hour < config.EndHour
}
