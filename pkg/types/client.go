package types

import "time"

// Client is one program participant. The eleven Flag fields are the only
// boolean-valued columns.
type Client struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	ClarityID      *string   `db:"clarity_id" json:"clarityId"`
	OutreachWorker *string   `db:"outreach_worker" json:"outreachWorker"`
	DateOfEntry    time.Time `db:"date_of_entry" json:"dateOfEntry"`

	Phase1ID             Flag `db:"phase1_id" json:"phase1Id"`
	Phase2SocialSecurity Flag `db:"phase2_social_security" json:"phase2SocialSecurity"`
	Phase3BirthCert      Flag `db:"phase3_birth_cert" json:"phase3BirthCert"`
	Phase4ProofOfIncome  Flag `db:"phase4_proof_of_income" json:"phase4ProofOfIncome"`

	HousingPaperworkCompleted Flag       `db:"housing_paperwork_completed" json:"housingPaperworkCompleted"`
	Housed                    Flag       `db:"housed" json:"housed"`
	HousingDate               *time.Time `db:"housing_date" json:"housingDate"`

	HasBankAccount Flag `db:"has_bank_account" json:"hasBankAccount"`
	HasSavings     Flag `db:"has_savings" json:"hasSavings"`
	HasChime       Flag `db:"has_chime" json:"hasChime"`

	NeedsDetox                 Flag    `db:"needs_detox" json:"needsDetox"`
	DetoxReferralMadeTo        *string `db:"detox_referral_made_to" json:"detoxReferralMadeTo"`
	NeedsMentalHealth          Flag    `db:"needs_mental_health" json:"needsMentalHealth"`
	MentalHealthReferralMadeTo *string `db:"mental_health_referral_made_to" json:"mentalHealthReferralMadeTo"`

	Notes *string `db:"notes" json:"notes"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// PhasesCompleted counts the documentation phases the client has finished.
func (c *Client) PhasesCompleted() int {
	var n int
	for _, f := range []Flag{c.Phase1ID, c.Phase2SocialSecurity, c.Phase3BirthCert, c.Phase4ProofOfIncome} {
		if f {
			n++
		}
	}
	return n
}
