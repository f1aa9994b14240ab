package stats

// Field identifies one logical field of a QualityRecord that the extractor
// resolves from raw input headers.
type Field string

const (
	FieldDate         Field = "date"
	FieldMachine      Field = "machine"
	FieldInspector    Field = "inspector"
	FieldPart         Field = "part"
	FieldChecked      Field = "checked"
	FieldSuspect      Field = "suspect"
	FieldObservation  Field = "observation"
	FieldAvailability Field = "availability"
	FieldPerformance  Field = "performance"
	FieldQuality      Field = "quality"
)

// GapPolicy controls how days without records appear in the time series.
type GapPolicy string

const (
	// GapOmit leaves gaps out entirely, so a missing day is never mistaken
	// for an inspected-but-clean day.
	GapOmit GapPolicy = "omit"
	// GapZeroFill inserts zero-volume points for missing periods.
	GapZeroFill GapPolicy = "zero-fill"
)

// Config is the full configuration surface of the aggregation engine. It is
// a plain value threaded through the pipeline; the engine holds no ambient
// state beyond it.
type Config struct {
	// Aliases maps each logical field to an ordered list of accepted header
	// spellings. Matching is case-insensitive and declared order wins when a
	// row carries several matching columns (e.g. a localized and an English
	// header side by side).
	Aliases map[Field][]string

	Thresholds     Thresholds
	LeaderboardCap int
	GapPolicy      GapPolicy

	// Bucket is the time-series granularity: "day", "week" or "month".
	Bucket string
}

// DefaultAliases covers the header spellings seen in CONTROL workbooks,
// Romanian and English side by side.
func DefaultAliases() map[Field][]string {
	return map[Field][]string{
		FieldDate:         {"Data", "Date", "Data/Date"},
		FieldMachine:      {"Machine", "Masina"},
		FieldInspector:    {"Controlor", "Inspector"},
		FieldPart:         {"Part Number", "Reper", "Part"},
		FieldChecked:      {"Cantitate verificata dimensional", "Cantitate verificata", "Quantity Checked", "Checked"},
		FieldSuspect:      {"SUSPECTE", "Suspecte", "Suspect", "NOK"},
		FieldObservation:  {"Observatii", "Observations", "Observation"},
		FieldAvailability: {"Disponibilitate", "Availability"},
		FieldPerformance:  {"Performanta", "Performance"},
		FieldQuality:      {"Calitate", "Quality Factor"},
	}
}

// DefaultConfig returns the recognized defaults: 2%/5% scrap bands, top-20
// leaderboards, gaps omitted, daily buckets.
func DefaultConfig() Config {
	return Config{
		Aliases:        DefaultAliases(),
		Thresholds:     Thresholds{Low: 2, Medium: 5},
		LeaderboardCap: 20,
		GapPolicy:      GapOmit,
		Bucket:         "day",
	}
}
