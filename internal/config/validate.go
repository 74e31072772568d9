package config

import "fmt"

// SRS stages run 0 (unstarted) through 9 (burned).
const maxSRSStage = 9

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validateStage("wanikani.kanji_min_stage", c.WaniKani.KanjiMinStage); err != nil {
		return err
	}
	if err := validateStage("wanikani.vocabulary_min_stage", c.WaniKani.VocabularyMinStage); err != nil {
		return err
	}

	if c.JPDB.BatchSize <= 0 {
		return fmt.Errorf("jpdb.batch_size must be > 0 (got %d)", c.JPDB.BatchSize)
	}

	return nil
}

func validateStage(field string, stage int) error {
	if stage < 1 || stage > maxSRSStage {
		return fmt.Errorf("%s must be between 1 and %d (got %d)", field, maxSRSStage, stage)
	}
	return nil
}
