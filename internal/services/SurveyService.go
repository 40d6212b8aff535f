package services

import (
	"fmt"
	"time"

	"surveyd/internal/models"
	"surveyd/internal/providers"
	"surveyd/internal/structures"
	"surveyd/internal/survey"
	"surveyd/internal/survey/interfaces"
)

type SurveyServiceInterface interface {
	Submit(sub *models.SurveySubmission, meta structures.RequestMeta) (*models.StoredSurveyRecord, error)
}

// SurveyService runs the submission pipeline: normalize, validate, anonymize,
// derive the dedup key, assemble and append. Every path ends in a durable
// append or a classified error; nothing is dropped silently.
type SurveyService struct {
	logger     providers.Logger
	validator  *survey.SubmissionValidator
	anonymizer *survey.Anonymizer
	deriver    *survey.KeyDeriver
	assembler  *survey.RecordAssembler
	journal    interfaces.JournalInterface
	cache      providers.CacheProviderInterface
	metrics    providers.MetricsProviderInterface
}

func (ss *SurveyService) Submit(sub *models.SurveySubmission, meta structures.RequestMeta) (*models.StoredSurveyRecord, error) {
	norm := survey.Normalize(*sub, meta)

	if errs := ss.validator.Validate(&norm); errs != nil {
		ss.metrics.IncSubmissions(providers.ResultInvalid)
		return nil, errs
	}

	// Anonymization and key derivation are independent pure transforms; the
	// raw email is not referenced again past this point.
	emailDigest := ss.anonymizer.EmailDigest(norm.Email)
	ageDigest := ss.anonymizer.AgeDigest(norm.Age)
	submissionID := ss.deriver.DeriveSubmissionID(&norm)

	if _, seen := ss.cache.Get(submissionID); seen {
		// Duplicates are appended anyway: the journal is append-only and the
		// dedup key is a correlation signal, not a uniqueness constraint.
		ss.metrics.IncDuplicateSubmissions()
		ss.logger.Debugf(providers.TypePost, "Repeat submission_id %s within dedup window", submissionID)
	} else {
		ss.cache.Set(submissionID, []byte{1})
	}

	record := ss.assembler.Assemble(&norm, emailDigest, ageDigest, submissionID, meta)

	start := time.Now()
	if err := ss.journal.Append(record); err != nil {
		ss.metrics.IncSubmissions(providers.ResultFailed)
		return nil, fmt.Errorf("append record: %w", err)
	}
	ss.metrics.ObserveAppendDuration(time.Since(start))

	ss.metrics.IncSubmissions(providers.ResultAccepted)
	return record, nil
}

func NewSurveyService(logger providers.Logger, validator *survey.SubmissionValidator, anonymizer *survey.Anonymizer, deriver *survey.KeyDeriver, assembler *survey.RecordAssembler, journal interfaces.JournalInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) SurveyServiceInterface {
	return &SurveyService{
		logger:     logger,
		validator:  validator,
		anonymizer: anonymizer,
		deriver:    deriver,
		assembler:  assembler,
		journal:    journal,
		cache:      cache,
		metrics:    metrics,
	}
}
