package dialogue

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
)

// Welcome returns the greeting that opens a fresh session. The
// time-of-day banding is cosmetic.
func Welcome(now time.Time) string {
	greeting := "Good evening"
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		greeting = "Good morning"
	case h >= 12 && h < 18:
		greeting = "Good afternoon"
	}

	return greeting + "! I'm your Skin Assessment Assistant. I can help analyze images of skin lesions and provide guidance on next steps.\n\n" +
		"I'm not a replacement for professional medical advice, but I can help you understand if a skin lesion might need attention from a dermatologist.\n\n" +
		"Would you like me to guide you through uploading and analyzing an image?"
}

func guidanceMessage() string {
	var b strings.Builder
	b.WriteString("Great! Here are some tips for taking a good photo of your skin lesion:\n\n")
	for _, tip := range guidanceTips {
		b.WriteString("• ")
		b.WriteString(tip)
		b.WriteString("\n")
	}
	b.WriteString("\nWhen you're ready, please send your image as a photo. Would you like to proceed, or do you have any questions?")
	return b.String()
}

// PredictionMessage summarizes a classifier result for the transcript.
// The wording bands on confidence; the melanoma branch always points the
// user at a dermatologist.
func PredictionMessage(p domain.Prediction) string {
	var msg string
	if p.Label == domain.LabelMelanoma {
		switch {
		case p.Confidence > 80:
			msg = fmt.Sprintf("Based on the image analysis, there is a high likelihood (%.1f%%) that this lesion shows characteristics of melanoma, which is a serious form of skin cancer.", p.Confidence)
		case p.Confidence > 60:
			msg = fmt.Sprintf("The analysis indicates a moderate to high likelihood (%.1f%%) that this lesion has features concerning for melanoma.", p.Confidence)
		default:
			msg = fmt.Sprintf("The analysis shows some features that could be concerning (%.1f%% likelihood of melanoma), though the confidence is not extremely high.", p.Confidence)
		}
		msg += "\n\n**Important:** This result suggests you should consult with a dermatologist as soon as possible for a professional evaluation."
	} else {
		switch {
		case p.Confidence > 80:
			msg = fmt.Sprintf("The analysis suggests with high confidence (%.1f%%) that this lesion appears to be benign (non-cancerous).", p.Confidence)
		case p.Confidence > 60:
			msg = fmt.Sprintf("The analysis indicates with moderate confidence (%.1f%%) that this lesion is likely benign.", p.Confidence)
		default:
			msg = fmt.Sprintf("The analysis suggests this might be benign, but the confidence level is lower (%.1f%%). It's still advisable to have it checked.", p.Confidence)
		}
		msg += "\n\nEven with a low-risk result, it's always good practice to monitor the lesion for any changes and consider a dermatologist visit if you have concerns."
	}

	msg += "\n\nWould you like me to explain what features the system looks for in analyzing skin lesions?"
	return msg
}

// Explain expands on what the analysis looked at, in user-friendly
// terms, banded by label and confidence. Every band repeats that none of
// this constitutes a diagnosis.
func Explain(p domain.Prediction) string {
	if p.Label == domain.LabelMelanoma {
		switch {
		case p.Confidence > 80:
			return "The analysis detected several visual characteristics that are commonly associated with melanoma: irregular borders that are not smooth and even, multiple colors within the lesion, and an asymmetrical shape where one half doesn't match the other. The overall pattern matches known melanoma characteristics with high confidence.\n\n**This does not constitute a medical diagnosis.** Melanoma can only be definitively diagnosed through a biopsy performed by a medical professional."
		case p.Confidence > 60:
			return "The analysis found some concerning features that can be associated with melanoma: some border irregularity, some color variation within the lesion, and possible asymmetry in the shape.\n\n**This is not a diagnosis.** The moderate confidence level means that while some concerning features are present, a professional evaluation is essential for proper assessment."
		default:
			return "The analysis detected a few features that can sometimes be found in melanoma, but with lower confidence: subtle irregularities in appearance and limited similarity to known melanoma characteristics.\n\n**This is not a diagnosis.** The low confidence level means these features are not strongly indicative and professional evaluation is necessary."
		}
	}
	switch {
	case p.Confidence > 80:
		return "The analysis suggests this lesion has characteristics typically associated with benign moles: regular, well-defined borders, consistent coloration throughout, and a symmetrical shape.\n\n**While this analysis suggests low risk, any changing or concerning lesion should be evaluated by a dermatologist.**"
	case p.Confidence > 60:
		return "The analysis suggests this lesion has several features commonly seen in benign lesions: mostly regular borders, relatively consistent coloration, and a generally symmetrical appearance.\n\n**This is not a definitive diagnosis.** The moderate confidence level means a professional evaluation is still recommended, especially if you notice any changes."
	default:
		return "The analysis suggests this lesion might be benign, but with lower confidence: some regular features typically seen in benign lesions, with limited similarity to typical benign characteristics.\n\n**This is not a diagnosis.** The low confidence level means that professional evaluation is recommended to properly assess this lesion."
	}
}
