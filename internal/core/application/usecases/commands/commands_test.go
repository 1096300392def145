package commands_test

import (
	"testing"
	"time"

	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyForJobCommand(t *testing.T) {
	cmd, err := commands.NewApplyForJobCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())

	_, err = commands.NewApplyForJobCommand(kernel.UUID{}, kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAssignWorkerCommand(t *testing.T) {
	companyID, jobID, workerID, newID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewAssignWorkerCommand(companyID, jobID, workerID, newID)
	require.NoError(t, err)
	assert.True(t, cmd.CompanyID().IsEqual(companyID))
	assert.True(t, cmd.JobID().IsEqual(jobID))
	assert.True(t, cmd.WorkerID().IsEqual(workerID))
	assert.True(t, cmd.NewAssignmentID().IsEqual(newID))

	_, err = commands.NewAssignWorkerCommand(companyID, kernel.UUID{}, workerID, newID)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCheckInCommand(t *testing.T) {
	tests := []struct {
		name    string
		id      kernel.UUID
		code    string
		wantErr error
	}{
		{"valid", kernel.NewUUID(), "XYZ789", nil},
		{"empty code", kernel.NewUUID(), "", errs.ErrValueIsRequired},
		{"missing assignment", kernel.UUID{}, "XYZ789", errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCheckInCommand(tt.id, tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, cmd.ScannedCode())
		})
	}
}

func TestNewRecordLocationSampleCommand(t *testing.T) {
	point, _ := kernel.NewGeoPoint(1, 2)

	_, err := commands.NewRecordLocationSampleCommand(kernel.NewUUID(), point, time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRecordLocationSampleCommand(kernel.NewUUID(), kernel.GeoPoint{}, time.Now())
	require.Error(t, err)
}

func TestCommands_ZeroValueIsNotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.ApplyForJobCommand{}.Validate(), commands.ErrApplyForJobCommandIsNotConstructed)
	assert.ErrorIs(t, commands.AssignWorkerCommand{}.Validate(), commands.ErrAssignWorkerCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CheckInCommand{}.Validate(), commands.ErrCheckInCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CompleteAssignmentCommand{}.Validate(), commands.ErrCompleteAssignmentCommandIsNotConstructed)
	assert.ErrorIs(t, commands.BookOffCommand{}.Validate(), commands.ErrBookOffCommandIsNotConstructed)
	assert.ErrorIs(t, commands.AddToRotaCommand{}.Validate(), commands.ErrAddToRotaCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RecordLocationSampleCommand{}.Validate(), commands.ErrRecordLocationSampleCommandIsNotConstructed)
	assert.ErrorIs(t, commands.ReportLocationCommand{}.Validate(), commands.ErrReportLocationCommandIsNotConstructed)
}
