package dialogue

// The fixed medical history bank, asked in order. Risk extraction keys
// off these exact strings, so they are named constants.
const (
	QuestionDuration      = "How long have you noticed this skin lesion?"
	QuestionChanges       = "Has the lesion changed in size, shape, or color recently?"
	QuestionFamilyHistory = "Do you have a family history of skin cancer?"
	QuestionSunExposure   = "Have you had significant sun exposure or sunburns in your life?"
	QuestionSymptoms      = "Is the lesion painful, itchy, or bleeding?"
	QuestionPriorCancer   = "Have you had any previous skin cancers?"
)

var Questions = []string{
	QuestionDuration,
	QuestionChanges,
	QuestionFamilyHistory,
	QuestionSunExposure,
	QuestionSymptoms,
	QuestionPriorCancer,
}

var guidanceTips = []string{
	"Please ensure the skin lesion is centered in the image.",
	"Use natural lighting without flash if possible.",
	"Take the photo from about 10-15 cm (4-6 inches) away.",
	"Include a ruler or coin next to the lesion if possible to show its size.",
	"If possible, take multiple photos from different angles.",
}
