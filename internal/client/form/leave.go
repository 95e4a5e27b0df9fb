package form

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/leaves"
)

// LeaveForm drives the create/edit flow for a leave request.
type LeaveForm struct {
	repo leaves.Repository

	id    string
	Draft models.LeaveRequest
}

func NewLeaveForm(repo leaves.Repository) *LeaveForm {
	return &LeaveForm{repo: repo}
}

func (f *LeaveForm) Load(ctx context.Context, id string) error {
	f.id = id
	if id == "" {
		f.Draft = models.LeaveRequest{
			FromDate: models.Today(),
			ToDate:   models.Today(),
			Status:   models.LeaveStatusPending,
		}
		return nil
	}
	l, err := f.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	f.Draft = *l
	return nil
}

func (f *LeaveForm) Editing() bool { return f.id != "" }

func (f *LeaveForm) Validate() error {
	fields := FieldErrors{}
	required(fields, "warriorId", f.Draft.WarriorID)
	required(fields, "reason", f.Draft.Reason)
	oneOf(fields, "status", f.Draft.Status, []string{
		models.LeaveStatusPending, models.LeaveStatusApproved, models.LeaveStatusRejected,
	})
	switch {
	case f.Draft.FromDate.Display() == "":
		fields["fromDate"] = "is required"
	case f.Draft.ToDate.Display() == "":
		fields["toDate"] = "is required"
	case f.Draft.ToDate.Before(f.Draft.FromDate.Time):
		fields["toDate"] = "must not precede the start date"
	}
	return invalid(fields)
}

func (f *LeaveForm) Submit(ctx context.Context) (*models.LeaveRequest, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.id == "" {
		return f.repo.Create(ctx, &f.Draft)
	}
	return f.repo.Update(ctx, f.id, &f.Draft)
}
