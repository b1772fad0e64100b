package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/PraharshPatni13/brokerage-filler/dto"
)

type Config struct {
	ServerPort   string
	UploadFolder string
	OutputFolder string
	MaxFileSize  int64

	// PDFPasswords are tried in order; the empty candidate covers
	// unencrypted documents.
	PDFPasswords []string

	// MaxReasonableRate is the sanity ceiling: extracted values above it
	// are discarded as noise.
	MaxReasonableRate decimal.Decimal

	// FuzzyThreshold is the minimum 0-100 similarity score for accepting
	// an approximate scheme-name match.
	FuzzyThreshold int

	// TierAliases maps uppercased spreadsheet tier labels to one or more
	// canonical tiers.
	TierAliases map[string][]dto.Tier

	// SchemeOverrides holds mandated rates for schemes whose PDF layouts
	// are known to be misread. They always win over extracted values.
	SchemeOverrides map[string]dto.SchemeRates
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	uploadFolder := os.Getenv("UPLOAD_FOLDER")
	if uploadFolder == "" {
		uploadFolder = "uploads"
	}

	outputFolder := os.Getenv("OUTPUT_FOLDER")
	if outputFolder == "" {
		outputFolder = "filled_output"
	}

	passwords := []string{"ARN100481", "AAHCP7661C", ""}
	if env := os.Getenv("PDF_PASSWORDS"); env != "" {
		passwords = strings.Split(env, ",")
	}

	threshold := 90
	if env := os.Getenv("FUZZY_THRESHOLD"); env != "" {
		if v, err := strconv.Atoi(env); err == nil {
			threshold = v
		}
	}

	return &Config{
		ServerPort:        serverPort,
		UploadFolder:      uploadFolder,
		OutputFolder:      outputFolder,
		MaxFileSize:       32 * 1024 * 1024, // 32 MB
		PDFPasswords:      passwords,
		MaxReasonableRate: decimal.NewFromFloat(10.0),
		FuzzyThreshold:    threshold,
		TierAliases:       DefaultTierAliases(),
		SchemeOverrides:   DefaultSchemeOverrides(),
	}
}

// DefaultTierAliases covers the tier label spellings seen across brokerage
// spreadsheets, including the canonical labels themselves.
func DefaultTierAliases() map[string][]dto.Tier {
	firstToThird := []dto.Tier{dto.TierFirstYear, dto.TierSecondYear, dto.TierThirdYear}

	aliases := map[string][]dto.Tier{
		"FOURTH YEAR":     {dto.TierFourthYear},
		"4TH YEAR TRAIL":  {dto.TierFourthYear},
		"4TH YEAR":        {dto.TierFourthYear},
		"LONG TERM TRAIL": {dto.TierLongTerm},
		"LONG TERM":       {dto.TierLongTerm},

		"1 TO 3 YEARS TRAIL": firstToThird,
		"1-3 YEARS TRAIL":    firstToThird,
		"1 TO 3 YEARS":       firstToThird,
		"1-3 YEARS":          firstToThird,
		"TRAIL 1-3":          firstToThird,
		"TRAIL YEARS 1-3":    firstToThird,
	}
	for _, t := range dto.AllTiers {
		aliases[t.String()] = []dto.Tier{t}
	}
	return aliases
}

// DefaultSchemeOverrides lists schemes whose published PDFs are repeatedly
// misextracted; the mandated rates replace whatever was read.
func DefaultSchemeOverrides() map[string]dto.SchemeRates {
	return map[string]dto.SchemeRates{
		"hsbc financial services fund": {
			dto.TierFourthYear: decimal.NewFromFloat(1.35),
		},
		"hsbc india export opportunities fund": {
			dto.TierThirdYear:  decimal.NewFromFloat(1.45),
			dto.TierFourthYear: decimal.NewFromFloat(1.35),
		},
		"hsbc midcap fund": {
			dto.TierThirdYear:  decimal.NewFromFloat(1.15),
			dto.TierFourthYear: decimal.NewFromFloat(1.05),
			dto.TierLongTerm:   decimal.NewFromFloat(1.05),
		},
	}
}
