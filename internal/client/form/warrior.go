package form

import (
	"context"
	"fmt"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/locations"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/warriors"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/upload"
)

// WarriorForm drives the create/edit flow for a personnel record, including
// the province→commune hometown cascade and the repeatable family list.
type WarriorForm struct {
	repo warriors.Repository
	locs locations.Repository

	id    string
	Draft models.Warrior

	Provinces []models.Province
	Communes  []models.Commune

	// Avatar is the staged upload slot for the portrait.
	Avatar *upload.Slot
}

func NewWarriorForm(repo warriors.Repository, locs locations.Repository, avatar *upload.Slot) *WarriorForm {
	return &WarriorForm{repo: repo, locs: locs, Avatar: avatar}
}

// Load initializes the draft: defaults for a new record, or the stored
// record when id is non-empty. Province options are loaded either way;
// commune options only when the record already carries a province.
func (f *WarriorForm) Load(ctx context.Context, id string) error {
	f.id = id
	if id == "" {
		f.Draft = models.Warrior{
			Rank:     models.WarriorRanks[0],
			Status:   models.WarriorStatusActive,
			JoinDate: models.Today(),
			Family:   []models.FamilyMember{},
		}
	} else {
		w, err := f.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		f.Draft = *w
		if f.Draft.Family == nil {
			f.Draft.Family = []models.FamilyMember{}
		}
		f.Avatar.SetCommitted(f.Draft.Avatar)
	}

	provinces, err := f.locs.Provinces(ctx)
	if err != nil {
		return fmt.Errorf("load provinces: %w", err)
	}
	f.Provinces = provinces

	if f.Draft.ProvinceID != "" {
		communes, err := f.locs.Communes(ctx, f.Draft.ProvinceID)
		if err != nil {
			return fmt.Errorf("load communes: %w", err)
		}
		f.Communes = communes
	}
	return nil
}

// Editing reports whether the form edits an existing record.
func (f *WarriorForm) Editing() bool { return f.id != "" }

// SetProvince switches the province. The commune selection and its options
// are cleared before the new options are fetched, so a failed fetch can
// never leave a commune paired with the wrong province.
func (f *WarriorForm) SetProvince(ctx context.Context, provinceID string) error {
	if provinceID == f.Draft.ProvinceID {
		return nil
	}
	f.Draft.ProvinceID = provinceID
	f.Draft.CommuneID = ""
	f.Communes = nil
	if provinceID == "" {
		return nil
	}

	communes, err := f.locs.Communes(ctx, provinceID)
	if err != nil {
		return fmt.Errorf("load communes: %w", err)
	}
	f.Communes = communes
	return nil
}

// SetCommune selects a commune from the currently loaded options.
func (f *WarriorForm) SetCommune(communeID string) error {
	if communeID == "" {
		f.Draft.CommuneID = ""
		return nil
	}
	for _, c := range f.Communes {
		if c.ID == communeID {
			f.Draft.CommuneID = communeID
			return nil
		}
	}
	return invalid(FieldErrors{"communeId": "not in the selected province"})
}

// AddFamilyMember appends one family entry.
func (f *WarriorForm) AddFamilyMember(m models.FamilyMember) {
	f.Draft.Family = append(f.Draft.Family, m)
}

// RemoveFamilyMember removes the entry at index i, keeping the order of the
// remaining entries.
func (f *WarriorForm) RemoveFamilyMember(i int) {
	if i < 0 || i >= len(f.Draft.Family) {
		return
	}
	f.Draft.Family = append(f.Draft.Family[:i], f.Draft.Family[i+1:]...)
}

// Validate checks the draft. An empty family list is fine; every present
// entry needs at least a name.
func (f *WarriorForm) Validate() error {
	fields := FieldErrors{}
	required(fields, "name", f.Draft.Name)
	oneOf(fields, "rank", f.Draft.Rank, models.WarriorRanks)
	oneOf(fields, "status", f.Draft.Status, []string{models.WarriorStatusActive, models.WarriorStatusInactive})
	if f.Draft.JoinDate.Display() == "" {
		fields["joinDate"] = "is required"
	}
	for i, m := range f.Draft.Family {
		if m.Name == "" {
			fields[fmt.Sprintf("familyMembers[%d].name", i)] = "is required"
		}
	}
	return invalid(fields)
}

// Submit validates and sends the draft. The avatar reference is whatever
// the slot has committed; a merely selected file is not sent.
func (f *WarriorForm) Submit(ctx context.Context) (*models.Warrior, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.Draft.Avatar = f.Avatar.Committed()
	if f.id == "" {
		return f.repo.Create(ctx, &f.Draft)
	}
	return f.repo.Update(ctx, f.id, &f.Draft)
}
