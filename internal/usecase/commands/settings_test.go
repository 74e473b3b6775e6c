//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fleet-console/internal/domain/settings"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"github.com/stretchr/testify/suite"
)

type stubSettingsViewStore struct {
	repo *stubSettingsRepo
}

func (s stubSettingsViewStore) Get(context.Context) (*queries.SettingsView, error) {
	cfg := s.repo.current
	return &queries.SettingsView{
		HourTolerance:         cfg.HourTolerance(),
		DefaultDailyRateCents: cfg.DefaultDailyRateCents(),
		Currency:              cfg.Currency(),
		NotifyBookingCreated:  cfg.NotifyBookingCreated(),
		NotifyFineRegistered:  cfg.NotifyFineRegistered(),
	}, nil
}

type SettingsCommandsTestSuite struct {
	suite.Suite
	clock        *clock.MockClock
	settingsRepo *stubSettingsRepo
	cmds         commands.SettingsCommands
}

func TestSettingsCommandsSuite(t *testing.T) {
	suite.Run(t, new(SettingsCommandsTestSuite))
}

func (s *SettingsCommandsTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC))

	cfg, err := settings.NewOperatorSettings(2, 120_000, "EUR")
	s.Require().NoError(err)

	s.settingsRepo = &stubSettingsRepo{current: cfg}
	s.cmds = commands.NewSettingsCommands(
		s.settingsRepo,
		stubSettingsViewStore{repo: s.settingsRepo},
		s.clock,
	)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func (s *SettingsCommandsTestSuite) TestUpdateSettingsPatchesGivenFields() {
	view, err := s.cmds.UpdateSettings(context.Background(), commands.UpdateSettingsParams{
		HourTolerance:        intPtr(4),
		NotifyFineRegistered: boolPtr(false),
	})
	s.Require().NoError(err)
	s.Require().NotNil(view)

	s.Equal(4, s.settingsRepo.current.HourTolerance())
	s.Equal(int64(120_000), s.settingsRepo.current.DefaultDailyRateCents())
	s.False(s.settingsRepo.current.NotifyFineRegistered())
	s.True(s.settingsRepo.current.NotifyBookingCreated())
	s.Equal(4, view.HourTolerance)
}

func (s *SettingsCommandsTestSuite) TestUpdateSettingsRejectsToleranceOutOfRange() {
	for _, tolerance := range []int{0, 13, -1} {
		_, err := s.cmds.UpdateSettings(context.Background(), commands.UpdateSettingsParams{
			HourTolerance: intPtr(tolerance),
		})
		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrDomainValidationFailed), "tolerance %d", tolerance)
		s.True(errs.Is(err, settings.ErrInvalidTolerance), "tolerance %d", tolerance)
	}
	s.Equal(2, s.settingsRepo.current.HourTolerance())
}

func (s *SettingsCommandsTestSuite) TestUpdateSettingsRejectsNonPositiveRate() {
	_, err := s.cmds.UpdateSettings(context.Background(), commands.UpdateSettingsParams{
		DefaultDailyRateCents: int64Ptr(0),
	})
	s.Require().Error(err)
	s.True(errs.Is(err, settings.ErrInvalidDailyRate))
	s.Equal(int64(120_000), s.settingsRepo.current.DefaultDailyRateCents())
}
