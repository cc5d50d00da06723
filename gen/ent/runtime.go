// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/contractwise/backend/db/ent/schema"
	"github.com/contractwise/backend/gen/ent/contractanalysis"
	"github.com/contractwise/backend/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractanalysisFields := schema.ContractAnalysis{}.Fields()
	_ = contractanalysisFields
	// contractanalysisDescContractText is the schema descriptor for contract_text field.
	contractanalysisDescContractText := contractanalysisFields[2].Descriptor()
	// contractanalysis.ContractTextValidator is a validator for the "contract_text" field. It is called by the builders before save.
	contractanalysis.ContractTextValidator = contractanalysisDescContractText.Validators[0].(func(string) error)
	// contractanalysisDescContractType is the schema descriptor for contract_type field.
	contractanalysisDescContractType := contractanalysisFields[3].Descriptor()
	// contractanalysis.ContractTypeValidator is a validator for the "contract_type" field. It is called by the builders before save.
	contractanalysis.ContractTypeValidator = contractanalysisDescContractType.Validators[0].(func(string) error)
	// contractanalysisDescSummary is the schema descriptor for summary field.
	contractanalysisDescSummary := contractanalysisFields[6].Descriptor()
	// contractanalysis.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	contractanalysis.SummaryValidator = contractanalysisDescSummary.Validators[0].(func(string) error)
	// contractanalysisDescOverallScore is the schema descriptor for overall_score field.
	contractanalysisDescOverallScore := contractanalysisFields[13].Descriptor()
	// contractanalysis.OverallScoreValidator is a validator for the "overall_score" field. It is called by the builders before save.
	contractanalysis.OverallScoreValidator = func() func(int) error {
		validators := contractanalysisDescOverallScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(overall_score int) error {
			for _, fn := range fns {
				if err := fn(overall_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractanalysisDescVersion is the schema descriptor for version field.
	contractanalysisDescVersion := contractanalysisFields[18].Descriptor()
	// contractanalysis.DefaultVersion holds the default value on creation for the version field.
	contractanalysis.DefaultVersion = contractanalysisDescVersion.Default.(int)
	// contractanalysisDescLanguage is the schema descriptor for language field.
	contractanalysisDescLanguage := contractanalysisFields[22].Descriptor()
	// contractanalysis.DefaultLanguage holds the default value on creation for the language field.
	contractanalysis.DefaultLanguage = contractanalysisDescLanguage.Default.(string)
	// contractanalysisDescAiModel is the schema descriptor for ai_model field.
	contractanalysisDescAiModel := contractanalysisFields[23].Descriptor()
	// contractanalysis.AiModelValidator is a validator for the "ai_model" field. It is called by the builders before save.
	contractanalysis.AiModelValidator = contractanalysisDescAiModel.Validators[0].(func(string) error)
	// contractanalysisDescCreatedAt is the schema descriptor for created_at field.
	contractanalysisDescCreatedAt := contractanalysisFields[24].Descriptor()
	// contractanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	contractanalysis.DefaultCreatedAt = contractanalysisDescCreatedAt.Default.(func() time.Time)
	// contractanalysisDescUpdatedAt is the schema descriptor for updated_at field.
	contractanalysisDescUpdatedAt := contractanalysisFields[25].Descriptor()
	// contractanalysis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contractanalysis.DefaultUpdatedAt = contractanalysisDescUpdatedAt.Default.(func() time.Time)
	// contractanalysis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contractanalysis.UpdateDefaultUpdatedAt = contractanalysisDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractanalysisDescID is the schema descriptor for id field.
	contractanalysisDescID := contractanalysisFields[0].Descriptor()
	// contractanalysis.DefaultID holds the default value on creation for the id field.
	contractanalysis.DefaultID = contractanalysisDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescGoogleID is the schema descriptor for google_id field.
	userDescGoogleID := userFields[1].Descriptor()
	// user.GoogleIDValidator is a validator for the "google_id" field. It is called by the builders before save.
	user.GoogleIDValidator = userDescGoogleID.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[3].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescIsPremium is the schema descriptor for is_premium field.
	userDescIsPremium := userFields[5].Descriptor()
	// user.DefaultIsPremium holds the default value on creation for the is_premium field.
	user.DefaultIsPremium = userDescIsPremium.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
