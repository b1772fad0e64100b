package service

import (
	"log"

	"github.com/PraharshPatni13/brokerage-filler/config"
	"github.com/PraharshPatni13/brokerage-filler/dto"
	"github.com/PraharshPatni13/brokerage-filler/utils"
)

// ExtractService runs the decode-attempt loop: each candidate password is
// tried in order, and the first attempt that yields a non-empty registry
// wins. Total failure yields an empty registry, not an error.
type ExtractService struct {
	processor PDFProcessor
	tables    *utils.TableExtractor
	text      *utils.TextExtractor
	cfg       *config.Config
}

func NewExtractService(processor PDFProcessor, cfg *config.Config) *ExtractService {
	matcher := utils.NewTierMatcher(utils.DefaultTierRules())
	return &ExtractService{
		processor: processor,
		tables:    utils.NewTableExtractor(matcher, cfg.MaxReasonableRate),
		text:      utils.NewTextExtractor(matcher, cfg.MaxReasonableRate),
		cfg:       cfg,
	}
}

// ExtractSchemeData extracts the scheme -> tier -> rate map from the PDF.
func (s *ExtractService) ExtractSchemeData(pdfData []byte) dto.SchemeRegistry {
	for _, password := range s.cfg.PDFPasswords {
		registry := s.runAttempt(pdfData, password)
		if len(registry) > 0 {
			s.applyOverrides(registry)
			return registry
		}
	}
	return dto.SchemeRegistry{}
}

// runAttempt opens the document with one candidate password and extracts
// every page. Any failure, including a parser panic on malformed content,
// degrades to an empty result so the next candidate can be tried.
func (s *ExtractService) runAttempt(pdfData []byte, password string) (registry dto.SchemeRegistry) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Extraction attempt failed on malformed content: %v", r)
			registry = nil
		}
	}()

	doc, err := s.processor.Open(pdfData, password)
	if err != nil {
		log.Printf("Decode attempt failed: %v", err)
		return nil
	}

	registry = dto.SchemeRegistry{}
	tablesFound := false

	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			if s.tables.Extract(table, registry) {
				tablesFound = true
			}
		}
		// Fall back to line-by-line parsing while no usable table has
		// produced anything.
		if !tablesFound || len(registry) == 0 {
			s.text.Extract(page.Lines, registry)
		}
	}

	return registry
}

// applyOverrides forces the mandated rates onto schemes present in the
// registry, regardless of what was extracted.
func (s *ExtractService) applyOverrides(registry dto.SchemeRegistry) {
	for scheme, expected := range s.cfg.SchemeOverrides {
		rates, ok := registry[scheme]
		if !ok {
			continue
		}
		for tier, rate := range expected {
			if current, ok := rates[tier]; !ok || !current.Equal(rate) {
				rates[tier] = rate
			}
		}
	}
}
