package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"housingready/internal/utils"
	"housingready/pkg/types"

	"github.com/sirupsen/logrus"
)

type ClientCreator interface {
	Create(ctx context.Context, client *types.Client) (*types.Client, error)
}

type DocumentCreator interface {
	Create(ctx context.Context, doc *types.Document) error
}

// DemoClients is the local development roster. Clarity IDs are fixed so the
// seed can be run repeatedly without piling up duplicates.
func DemoClients(now time.Time) []*types.Client {
	day := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	return []*types.Client{
		{
			Name:           "Marcus Bell",
			ClarityID:      utils.StringPtr("DEMO-001"),
			OutreachWorker: utils.StringPtr("Renee"),
			DateOfEntry:    day(60),

			Phase1ID:                  true,
			Phase2SocialSecurity:      true,
			Phase3BirthCert:           true,
			Phase4ProofOfIncome:       true,
			HousingPaperworkCompleted: true,
			Housed:                    true,
			HousingDate:               utils.TimePtr(day(5)),
			HasBankAccount:            true,

			Notes: utils.StringPtr("Moved into unit 4B."),
		},
		{
			Name:           "Tanya Ortiz",
			ClarityID:      utils.StringPtr("DEMO-002"),
			OutreachWorker: utils.StringPtr("Renee"),
			DateOfEntry:    day(32),

			Phase1ID:                   true,
			Phase2SocialSecurity:       true,
			HasChime:                   true,
			NeedsMentalHealth:          true,
			MentalHealthReferralMadeTo: utils.StringPtr("Eastside Community Clinic"),
		},
		{
			Name:           "Luis Gomez",
			ClarityID:      utils.StringPtr("DEMO-003"),
			OutreachWorker: utils.StringPtr("Darnell"),
			DateOfEntry:    day(14),

			NeedsDetox:          true,
			DetoxReferralMadeTo: utils.StringPtr("Harbor Recovery Center"),
			Notes:               utils.StringPtr("Prefers contact at the library in the mornings."),
		},
		{
			Name:           "Priya Shah",
			ClarityID:      utils.StringPtr("DEMO-004"),
			OutreachWorker: utils.StringPtr("Darnell"),
			DateOfEntry:    day(3),
			Phase1ID:       true,
			HasSavings:     true,
		},
	}
}

// SeedClients inserts the demo roster, skipping clients whose clarity id is
// already taken. Each newly created client gets an intake note document when
// docs is non-nil.
func SeedClients(ctx context.Context, logger *logrus.Logger, clients ClientCreator, docs DocumentCreator, now time.Time) (int, error) {
	created := 0

	for _, demo := range DemoClients(now) {
		client, err := clients.Create(ctx, demo)
		if err != nil {
			if errors.Is(err, types.ErrDuplicateClarityID) {
				logger.WithField("clarity_id", utils.PtrString(demo.ClarityID)).Info("client already seeded, skipping")
				continue
			}
			return created, fmt.Errorf("failed to seed client %s: %w", demo.Name, err)
		}

		created++

		if docs == nil {
			continue
		}

		note := intakeNote(client)
		err = docs.Create(ctx, &types.Document{
			DocumentInfo: types.DocumentInfo{
				ClientID:   client.ID,
				FileName:   "intake-note.txt",
				FileType:   "text/plain",
				FileSize:   int64(len(note)),
				UploadedBy: "Seed",
			},
			FileData: note,
		})
		if err != nil {
			return created, fmt.Errorf("failed to seed intake note for %s: %w", client.ID, err)
		}
	}

	logger.WithField("created", created).Info("demo clients seeded")

	return created, nil
}

func intakeNote(c *types.Client) []byte {
	return fmt.Appendf(nil, "Intake: %s\nWorker: %s\nEntered: %s\nPhases completed: %d/4\n",
		c.Name,
		utils.PtrString(c.OutreachWorker),
		c.DateOfEntry.Format("01/02/2006"),
		c.PhasesCompleted(),
	)
}
