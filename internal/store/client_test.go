package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"housingready/internal/utils"
	"housingready/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flagField struct {
	name string
	ptr  func(c *types.Client) *types.Flag
}

var clientFlags = []flagField{
	{"phase1Id", func(c *types.Client) *types.Flag { return &c.Phase1ID }},
	{"phase2SocialSecurity", func(c *types.Client) *types.Flag { return &c.Phase2SocialSecurity }},
	{"phase3BirthCert", func(c *types.Client) *types.Flag { return &c.Phase3BirthCert }},
	{"phase4ProofOfIncome", func(c *types.Client) *types.Flag { return &c.Phase4ProofOfIncome }},
	{"housingPaperworkCompleted", func(c *types.Client) *types.Flag { return &c.HousingPaperworkCompleted }},
	{"housed", func(c *types.Client) *types.Flag { return &c.Housed }},
	{"hasBankAccount", func(c *types.Client) *types.Flag { return &c.HasBankAccount }},
	{"hasSavings", func(c *types.Client) *types.Flag { return &c.HasSavings }},
	{"hasChime", func(c *types.Client) *types.Flag { return &c.HasChime }},
	{"needsDetox", func(c *types.Client) *types.Flag { return &c.NeedsDetox }},
	{"needsMentalHealth", func(c *types.Client) *types.Flag { return &c.NeedsMentalHealth }},
}

func newClientRepo(t *testing.T) *ClientRepository {
	repo := NewClientRepository(newTestDB(t))
	repo.now = steppingClock(testEpoch)
	return repo
}

func TestClientFlagsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	for _, field := range clientFlags {
		for _, raw := range []string{`true`, `1`, `"yes"`, `false`, `0`, `""`, `null`} {
			t.Run(field.name+"="+raw, func(t *testing.T) {
				payload := []byte(`{"name":"Flag Test","` + field.name + `":` + raw + `}`)

				var input types.Client
				require.NoError(t, json.Unmarshal(payload, &input))

				created, err := repo.Create(ctx, &input)
				require.NoError(t, err)

				stored, err := repo.Client(ctx, created.ID)
				require.NoError(t, err)

				want := raw == `true` || raw == `1` || raw == `"yes"`
				for _, other := range clientFlags {
					expected := false
					if other.name == field.name {
						expected = want
					}
					assert.Equal(t, expected, other.ptr(stored).Bool(), "flag %s", other.name)
				}

				out, err := json.Marshal(stored)
				require.NoError(t, err)

				var decoded map[string]any
				require.NoError(t, json.Unmarshal(out, &decoded))
				assert.Equal(t, want, decoded[field.name])
			})
		}
	}
}

func TestClientCreateScenario(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	first, err := repo.Create(ctx, &types.Client{Name: "A", ClarityID: utils.StringPtr("C1"), Phase1ID: true})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "A", first.Name)
	require.NotNil(t, first.ClarityID)
	assert.Equal(t, "C1", *first.ClarityID)
	assert.True(t, first.Phase1ID.Bool())
	for _, field := range clientFlags[1:] {
		assert.False(t, field.ptr(first).Bool(), "flag %s", field.name)
	}
	assert.True(t, first.CreatedAt.Equal(first.DateOfEntry))
	assert.Nil(t, first.HousingDate)

	_, err = repo.Create(ctx, &types.Client{Name: "B", ClarityID: utils.StringPtr("C1")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrConstraintViolation))
	assert.ErrorIs(t, err, types.ErrDuplicateClarityID)

	require.NoError(t, repo.Delete(ctx, first.ID))

	again, err := repo.Create(ctx, &types.Client{Name: "B", ClarityID: utils.StringPtr("C1")})
	require.NoError(t, err)
	assert.Equal(t, "C1", *again.ClarityID)
}

func TestClientNullClarityIDsNeverCollide(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	for _, clarity := range []*string{nil, nil, utils.StringPtr(""), utils.StringPtr("  ")} {
		created, err := repo.Create(ctx, &types.Client{Name: "No Clarity", ClarityID: clarity})
		require.NoError(t, err)
		assert.Nil(t, created.ClarityID)
	}

	clients, err := repo.Clients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 4)
}

func TestClientCreateRequiresName(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	for _, name := range []string{"", "   "} {
		_, err := repo.Create(ctx, &types.Client{Name: name})
		assert.ErrorIs(t, err, types.ErrValidation)
	}

	clients, err := repo.Clients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestClientCreateKeepsSuppliedDates(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	entry := time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)
	housing := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, &types.Client{Name: "Dated", DateOfEntry: entry, HousingDate: &housing})
	require.NoError(t, err)

	assert.True(t, entry.Equal(created.DateOfEntry))
	require.NotNil(t, created.HousingDate)
	assert.True(t, housing.Equal(*created.HousingDate))
}

func TestClientsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &types.Client{Name: name})
		require.NoError(t, err)
	}

	clients, err := repo.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "third", clients[0].Name)
	assert.Equal(t, "second", clients[1].Name)
	assert.Equal(t, "first", clients[2].Name)
}

func TestClientsEmpty(t *testing.T) {
	clients, err := newClientRepo(t).Clients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestClientUpdateReplacesEveryField(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	created, err := repo.Create(ctx, &types.Client{
		Name:                 "Full",
		ClarityID:            utils.StringPtr("C9"),
		OutreachWorker:       utils.StringPtr("Sam"),
		Phase1ID:             true,
		Phase2SocialSecurity: true,
		Housed:               true,
		NeedsDetox:           true,
		DetoxReferralMadeTo:  utils.StringPtr("County Detox"),
		Notes:                utils.StringPtr("first visit"),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &types.Client{Name: "Full Renamed", HasChime: true})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Full Renamed", updated.Name)
	assert.True(t, updated.HasChime.Bool())
	assert.False(t, updated.Phase1ID.Bool())
	assert.False(t, updated.Phase2SocialSecurity.Bool())
	assert.False(t, updated.Housed.Bool())
	assert.False(t, updated.NeedsDetox.Bool())
	assert.Nil(t, updated.ClarityID)
	assert.Nil(t, updated.OutreachWorker)
	assert.Nil(t, updated.DetoxReferralMadeTo)
	assert.Nil(t, updated.Notes)

	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, created.DateOfEntry.Equal(updated.DateOfEntry))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestClientUpdateDoesNotSetHousingDate(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	created, err := repo.Create(ctx, &types.Client{Name: "Housing"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &types.Client{Name: "Housing", Housed: true})
	require.NoError(t, err)

	assert.True(t, updated.Housed.Bool())
	assert.Nil(t, updated.HousingDate)
}

func TestClientUpdateKeepsHousingDate(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	housing := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &types.Client{Name: "Housed", Housed: true, HousingDate: &housing})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &types.Client{Name: "Housed", Housed: true})
	require.NoError(t, err)
	require.NotNil(t, updated.HousingDate)
	assert.True(t, housing.Equal(*updated.HousingDate))

	other := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	updated, err = repo.Update(ctx, created.ID, &types.Client{Name: "Housed", HousingDate: &other})
	require.NoError(t, err)
	require.NotNil(t, updated.HousingDate)
	assert.True(t, housing.Equal(*updated.HousingDate))
}

func TestClientUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	_, err := repo.Update(ctx, "does-not-exist", &types.Client{Name: "Ghost"})
	assert.ErrorIs(t, err, types.ErrClientNotFound)
	assert.ErrorIs(t, err, types.ErrNotFound)

	clients, err := repo.Clients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestClientUpdateValidatesName(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	created, err := repo.Create(ctx, &types.Client{Name: "Valid"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.ID, &types.Client{})
	assert.ErrorIs(t, err, types.ErrValidation)

	stored, err := repo.Client(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Valid", stored.Name)
}

func TestClientUpdateDuplicateClarityID(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepo(t)

	_, err := repo.Create(ctx, &types.Client{Name: "One", ClarityID: utils.StringPtr("C1")})
	require.NoError(t, err)

	two, err := repo.Create(ctx, &types.Client{Name: "Two", ClarityID: utils.StringPtr("C2")})
	require.NoError(t, err)

	_, err = repo.Update(ctx, two.ID, &types.Client{Name: "Two", ClarityID: utils.StringPtr("C1")})
	assert.ErrorIs(t, err, types.ErrDuplicateClarityID)
}

func TestClientDeleteMissing(t *testing.T) {
	err := newClientRepo(t).Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, types.ErrClientNotFound)
}

func TestClientFetchMissing(t *testing.T) {
	_, err := newClientRepo(t).Client(context.Background(), "nope")
	assert.ErrorIs(t, err, types.ErrClientNotFound)
}

func TestClientDeleteCascadesDocuments(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)
	clients := NewClientRepository(d)
	documents := NewDocumentRepository(d)

	owner, err := clients.Create(ctx, &types.Client{Name: "Owner"})
	require.NoError(t, err)
	other, err := clients.Create(ctx, &types.Client{Name: "Other"})
	require.NoError(t, err)

	var owned []string
	for _, name := range []string{"id.png", "referral.pdf"} {
		doc := &types.Document{
			DocumentInfo: types.DocumentInfo{ClientID: owner.ID, FileName: name, FileType: "application/pdf", FileSize: 3},
			FileData:     []byte("abc"),
		}
		require.NoError(t, documents.Create(ctx, doc))
		owned = append(owned, doc.ID)
	}

	kept := &types.Document{
		DocumentInfo: types.DocumentInfo{ClientID: other.ID, FileName: "keep.txt", FileType: "text/plain", FileSize: 1},
		FileData:     []byte("k"),
	}
	require.NoError(t, documents.Create(ctx, kept))

	require.NoError(t, clients.Delete(ctx, owner.ID))

	for _, id := range owned {
		_, err := documents.Document(ctx, id)
		assert.ErrorIs(t, err, types.ErrDocumentNotFound)
	}

	remaining, err := documents.DocumentsByClientID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = documents.Document(ctx, kept.ID)
	assert.NoError(t, err)
}
