package form

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/upload"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

type fakeWarriorRepo struct {
	byID    map[string]*models.Warrior
	created *models.Warrior
	updated *models.Warrior
}

func (r *fakeWarriorRepo) List(ctx context.Context, p api.ListParams) (*models.Page[models.Warrior], error) {
	return nil, errors.New("not used")
}

func (r *fakeWarriorRepo) Get(ctx context.Context, id string) (*models.Warrior, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("warrior %s: %w", id, common.ErrNotFound)
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarriorRepo) Create(ctx context.Context, w *models.Warrior) (*models.Warrior, error) {
	r.created = w
	cp := *w
	cp.ID = "new-id"
	return &cp, nil
}

func (r *fakeWarriorRepo) Update(ctx context.Context, id string, w *models.Warrior) (*models.Warrior, error) {
	r.updated = w
	return w, nil
}

func (r *fakeWarriorRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeLocations struct {
	provinces  []models.Province
	communes   map[string][]models.Commune
	communeErr error
}

func (l *fakeLocations) Provinces(ctx context.Context) ([]models.Province, error) {
	return l.provinces, nil
}

func (l *fakeLocations) Communes(ctx context.Context, provinceID string) ([]models.Commune, error) {
	if l.communeErr != nil {
		return nil, l.communeErr
	}
	return l.communes[provinceID], nil
}

func testLocations() *fakeLocations {
	return &fakeLocations{
		provinces: []models.Province{{ID: "p1", Name: "Nghệ An"}, {ID: "p2", Name: "Hà Tĩnh"}},
		communes: map[string][]models.Commune{
			"p1": {{ID: "c1", Name: "Vinh", ProvinceID: "p1"}},
			"p2": {{ID: "c2", Name: "Hồng Lĩnh", ProvinceID: "p2"}},
		},
	}
}

func newWarriorForm(repo *fakeWarriorRepo, locs *fakeLocations) *WarriorForm {
	return NewWarriorForm(repo, locs, upload.NewSlot(1<<20, nil))
}

func TestWarriorForm_LoadDefaults(t *testing.T) {
	f := newWarriorForm(&fakeWarriorRepo{}, testLocations())

	require.NoError(t, f.Load(context.Background(), ""))
	require.False(t, f.Editing())
	require.Equal(t, models.WarriorStatusActive, f.Draft.Status)
	require.Equal(t, models.WarriorRanks[0], f.Draft.Rank)
	require.NotEmpty(t, f.Draft.JoinDate.Display())
	require.Empty(t, f.Draft.Family)
	require.Len(t, f.Provinces, 2)
	require.Empty(t, f.Communes)
}

func TestWarriorForm_LoadExistingFetchesCommunes(t *testing.T) {
	repo := &fakeWarriorRepo{byID: map[string]*models.Warrior{
		"w1": {ID: "w1", Name: "Nguyễn Văn A", Rank: "Hạ sĩ", Status: "active", ProvinceID: "p1", CommuneID: "c1", Avatar: "uploads/a.png"},
	}}
	f := newWarriorForm(repo, testLocations())

	require.NoError(t, f.Load(context.Background(), "w1"))
	require.True(t, f.Editing())
	require.Equal(t, "Nguyễn Văn A", f.Draft.Name)
	require.Len(t, f.Communes, 1)
	require.Equal(t, models.MediaRef("uploads/a.png"), f.Avatar.Committed())
	require.NotNil(t, f.Draft.Family)
}

func TestWarriorForm_LoadMissingRecord(t *testing.T) {
	f := newWarriorForm(&fakeWarriorRepo{byID: map[string]*models.Warrior{}}, testLocations())
	err := f.Load(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestWarriorForm_ProvinceChangeClearsCommune(t *testing.T) {
	locs := testLocations()
	repo := &fakeWarriorRepo{byID: map[string]*models.Warrior{
		"w1": {ID: "w1", Name: "A", Rank: "Hạ sĩ", Status: "active", ProvinceID: "p1", CommuneID: "c1"},
	}}
	f := newWarriorForm(repo, locs)
	require.NoError(t, f.Load(context.Background(), "w1"))

	require.NoError(t, f.SetProvince(context.Background(), "p2"))
	require.Empty(t, f.Draft.CommuneID)
	require.Len(t, f.Communes, 1)
	require.Equal(t, "c2", f.Communes[0].ID)

	// The old commune no longer validates.
	require.Error(t, f.SetCommune("c1"))
	require.NoError(t, f.SetCommune("c2"))
}

func TestWarriorForm_ProvinceFetchFailureStillClearsCommune(t *testing.T) {
	locs := testLocations()
	repo := &fakeWarriorRepo{byID: map[string]*models.Warrior{
		"w1": {ID: "w1", Name: "A", Rank: "Hạ sĩ", Status: "active", ProvinceID: "p1", CommuneID: "c1"},
	}}
	f := newWarriorForm(repo, locs)
	require.NoError(t, f.Load(context.Background(), "w1"))

	locs.communeErr = errors.New("backend down")
	require.Error(t, f.SetProvince(context.Background(), "p2"))

	// No stale pairing: the commune and its options are gone even though
	// the option fetch failed.
	require.Empty(t, f.Draft.CommuneID)
	require.Empty(t, f.Communes)
}

func TestWarriorForm_RemoveFamilyMemberKeepsOrder(t *testing.T) {
	f := newWarriorForm(&fakeWarriorRepo{}, testLocations())
	require.NoError(t, f.Load(context.Background(), ""))

	f.AddFamilyMember(models.FamilyMember{Name: "one"})
	f.AddFamilyMember(models.FamilyMember{Name: "two"})
	f.AddFamilyMember(models.FamilyMember{Name: "three"})
	f.RemoveFamilyMember(1)

	require.Len(t, f.Draft.Family, 2)
	require.Equal(t, "one", f.Draft.Family[0].Name)
	require.Equal(t, "three", f.Draft.Family[1].Name)

	// Out-of-range removal is a no-op.
	f.RemoveFamilyMember(7)
	require.Len(t, f.Draft.Family, 2)
}

func TestWarriorForm_ValidateFamilyNames(t *testing.T) {
	f := newWarriorForm(&fakeWarriorRepo{}, testLocations())
	require.NoError(t, f.Load(context.Background(), ""))
	f.Draft.Name = "Trần Văn B"

	// Empty list is allowed.
	require.NoError(t, f.Validate())

	f.AddFamilyMember(models.FamilyMember{Relationship: "vợ", Phone: "0912"})
	err := f.Validate()
	require.ErrorIs(t, err, common.ErrValidation)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "familyMembers[0].name")
}

func TestWarriorForm_SubmitValidationStopsBeforeNetwork(t *testing.T) {
	repo := &fakeWarriorRepo{}
	f := newWarriorForm(repo, testLocations())
	require.NoError(t, f.Load(context.Background(), ""))

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	require.Nil(t, repo.created)
}

func TestWarriorForm_EditSubmitUnchangedSendsOriginal(t *testing.T) {
	stored := &models.Warrior{
		ID: "w1", Name: "Nguyễn Văn A", Rank: "Trung sĩ", Unit: "C2",
		Status: "active", ProvinceID: "p1", CommuneID: "c1", Avatar: "uploads/a.png",
	}
	repo := &fakeWarriorRepo{byID: map[string]*models.Warrior{"w1": stored}}
	f := newWarriorForm(repo, testLocations())
	require.NoError(t, f.Load(context.Background(), "w1"))

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	require.Equal(t, stored.Name, repo.updated.Name)
	require.Equal(t, stored.Unit, repo.updated.Unit)
	require.Equal(t, stored.Avatar, repo.updated.Avatar)
}
