// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/echoz/ent/attemptevent"
	"github.com/abhisek/echoz/ent/llmrequestevent"
	"github.com/abhisek/echoz/ent/mistakecount"
	"github.com/abhisek/echoz/ent/roundevent"
	"github.com/abhisek/echoz/ent/schema"
	"github.com/abhisek/echoz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescRoundID is the schema descriptor for round_id field.
	attempteventDescRoundID := attempteventFields[0].Descriptor()
	// attemptevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	attemptevent.RoundIDValidator = attempteventDescRoundID.Validators[0].(func(string) error)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[1].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescPromptID is the schema descriptor for prompt_id field.
	attempteventDescPromptID := attempteventFields[2].Descriptor()
	// attemptevent.PromptIDValidator is a validator for the "prompt_id" field. It is called by the builders before save.
	attemptevent.PromptIDValidator = attempteventDescPromptID.Validators[0].(func(string) error)
	// attempteventDescCategory is the schema descriptor for category field.
	attempteventDescCategory := attempteventFields[4].Descriptor()
	// attemptevent.DefaultCategory holds the default value on creation for the category field.
	attemptevent.DefaultCategory = attempteventDescCategory.Default.(string)
	// attempteventDescExpectedText is the schema descriptor for expected_text field.
	attempteventDescExpectedText := attempteventFields[5].Descriptor()
	// attemptevent.ExpectedTextValidator is a validator for the "expected_text" field. It is called by the builders before save.
	attemptevent.ExpectedTextValidator = attempteventDescExpectedText.Validators[0].(func(string) error)
	// attempteventDescTranscript is the schema descriptor for transcript field.
	attempteventDescTranscript := attempteventFields[6].Descriptor()
	// attemptevent.DefaultTranscript holds the default value on creation for the transcript field.
	attemptevent.DefaultTranscript = attempteventDescTranscript.Default.(string)
	// attempteventDescOutcome is the schema descriptor for outcome field.
	attempteventDescOutcome := attempteventFields[7].Descriptor()
	// attemptevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	attemptevent.OutcomeValidator = attempteventDescOutcome.Validators[0].(func(string) error)
	// attempteventDescTier is the schema descriptor for tier field.
	attempteventDescTier := attempteventFields[8].Descriptor()
	// attemptevent.DefaultTier holds the default value on creation for the tier field.
	attemptevent.DefaultTier = attempteventDescTier.Default.(string)
	// attempteventDescSimilarity is the schema descriptor for similarity field.
	attempteventDescSimilarity := attempteventFields[9].Descriptor()
	// attemptevent.DefaultSimilarity holds the default value on creation for the similarity field.
	attemptevent.DefaultSimilarity = attempteventDescSimilarity.Default.(float64)
	// attempteventDescScoreDelta is the schema descriptor for score_delta field.
	attempteventDescScoreDelta := attempteventFields[10].Descriptor()
	// attemptevent.DefaultScoreDelta holds the default value on creation for the score_delta field.
	attemptevent.DefaultScoreDelta = attempteventDescScoreDelta.Default.(int)
	// attempteventDescListenedMs is the schema descriptor for listened_ms field.
	attempteventDescListenedMs := attempteventFields[11].Descriptor()
	// attemptevent.DefaultListenedMs holds the default value on creation for the listened_ms field.
	attemptevent.DefaultListenedMs = attempteventDescListenedMs.Default.(int64)
	// attempteventDescErrorMessage is the schema descriptor for error_message field.
	attempteventDescErrorMessage := attempteventFields[12].Descriptor()
	// attemptevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	attemptevent.DefaultErrorMessage = attempteventDescErrorMessage.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	mistakecountFields := schema.MistakeCount{}.Fields()
	_ = mistakecountFields
	// mistakecountDescPromptID is the schema descriptor for prompt_id field.
	mistakecountDescPromptID := mistakecountFields[0].Descriptor()
	// mistakecount.PromptIDValidator is a validator for the "prompt_id" field. It is called by the builders before save.
	mistakecount.PromptIDValidator = mistakecountDescPromptID.Validators[0].(func(string) error)
	// mistakecountDescMisses is the schema descriptor for misses field.
	mistakecountDescMisses := mistakecountFields[1].Descriptor()
	// mistakecount.DefaultMisses holds the default value on creation for the misses field.
	mistakecount.DefaultMisses = mistakecountDescMisses.Default.(int)
	// mistakecount.MissesValidator is a validator for the "misses" field. It is called by the builders before save.
	mistakecount.MissesValidator = mistakecountDescMisses.Validators[0].(func(int) error)
	// mistakecountDescUpdatedAt is the schema descriptor for updated_at field.
	mistakecountDescUpdatedAt := mistakecountFields[2].Descriptor()
	// mistakecount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mistakecount.DefaultUpdatedAt = mistakecountDescUpdatedAt.Default.(func() time.Time)
	// mistakecount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mistakecount.UpdateDefaultUpdatedAt = mistakecountDescUpdatedAt.UpdateDefault.(func() time.Time)
	roundeventMixin := schema.RoundEvent{}.Mixin()
	roundeventMixinFields0 := roundeventMixin[0].Fields()
	_ = roundeventMixinFields0
	roundeventFields := schema.RoundEvent{}.Fields()
	_ = roundeventFields
	// roundeventDescTimestamp is the schema descriptor for timestamp field.
	roundeventDescTimestamp := roundeventMixinFields0[1].Descriptor()
	// roundevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	roundevent.DefaultTimestamp = roundeventDescTimestamp.Default.(func() time.Time)
	// roundeventDescRoundID is the schema descriptor for round_id field.
	roundeventDescRoundID := roundeventFields[0].Descriptor()
	// roundevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	roundevent.RoundIDValidator = roundeventDescRoundID.Validators[0].(func(string) error)
	// roundeventDescAction is the schema descriptor for action field.
	roundeventDescAction := roundeventFields[1].Descriptor()
	// roundevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	roundevent.ActionValidator = roundeventDescAction.Validators[0].(func(string) error)
	// roundeventDescLanguage is the schema descriptor for language field.
	roundeventDescLanguage := roundeventFields[2].Descriptor()
	// roundevent.DefaultLanguage holds the default value on creation for the language field.
	roundevent.DefaultLanguage = roundeventDescLanguage.Default.(string)
	// roundeventDescCategory is the schema descriptor for category field.
	roundeventDescCategory := roundeventFields[3].Descriptor()
	// roundevent.DefaultCategory holds the default value on creation for the category field.
	roundevent.DefaultCategory = roundeventDescCategory.Default.(string)
	// roundeventDescPromptsServed is the schema descriptor for prompts_served field.
	roundeventDescPromptsServed := roundeventFields[5].Descriptor()
	// roundevent.DefaultPromptsServed holds the default value on creation for the prompts_served field.
	roundevent.DefaultPromptsServed = roundeventDescPromptsServed.Default.(int)
	// roundeventDescExcellentCount is the schema descriptor for excellent_count field.
	roundeventDescExcellentCount := roundeventFields[6].Descriptor()
	// roundevent.DefaultExcellentCount holds the default value on creation for the excellent_count field.
	roundevent.DefaultExcellentCount = roundeventDescExcellentCount.Default.(int)
	// roundeventDescCloseCount is the schema descriptor for close_count field.
	roundeventDescCloseCount := roundeventFields[7].Descriptor()
	// roundevent.DefaultCloseCount holds the default value on creation for the close_count field.
	roundevent.DefaultCloseCount = roundeventDescCloseCount.Default.(int)
	// roundeventDescRetryCount is the schema descriptor for retry_count field.
	roundeventDescRetryCount := roundeventFields[8].Descriptor()
	// roundevent.DefaultRetryCount holds the default value on creation for the retry_count field.
	roundevent.DefaultRetryCount = roundeventDescRetryCount.Default.(int)
	// roundeventDescUnscoredCount is the schema descriptor for unscored_count field.
	roundeventDescUnscoredCount := roundeventFields[9].Descriptor()
	// roundevent.DefaultUnscoredCount holds the default value on creation for the unscored_count field.
	roundevent.DefaultUnscoredCount = roundeventDescUnscoredCount.Default.(int)
	// roundeventDescScoreGained is the schema descriptor for score_gained field.
	roundeventDescScoreGained := roundeventFields[10].Descriptor()
	// roundevent.DefaultScoreGained holds the default value on creation for the score_gained field.
	roundevent.DefaultScoreGained = roundeventDescScoreGained.Default.(int)
	// roundeventDescTotalScore is the schema descriptor for total_score field.
	roundeventDescTotalScore := roundeventFields[11].Descriptor()
	// roundevent.DefaultTotalScore holds the default value on creation for the total_score field.
	roundevent.DefaultTotalScore = roundeventDescTotalScore.Default.(int)
	// roundeventDescDurationSecs is the schema descriptor for duration_secs field.
	roundeventDescDurationSecs := roundeventFields[12].Descriptor()
	// roundevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	roundevent.DefaultDurationSecs = roundeventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
