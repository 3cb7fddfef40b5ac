// Package content holds the static educational text blocks: what the
// assistant is, what it is not, and what to do with a result. Content
// only, no logic.
package content

import "github.com/mkravets/skin-assist-bot/pkg/domain"

func Description() string {
	return `This assistant uses computer vision to analyze images of skin lesions and assess the likelihood of skin cancer, specifically melanoma.

*How it works*
1. Upload a clear photo of the skin lesion
2. The system analyzes visual patterns and features
3. The assistant guides you through a few medical history questions
4. You receive an assessment with recommended next steps

*Important note*
This tool is designed for educational purposes and preliminary screening only. It is not a replacement for professional medical advice or diagnosis from a qualified dermatologist.`
}

func Disclaimer() string {
	return `This assistant is not a diagnostic tool and should not be used as a substitute for professional medical advice, diagnosis, or treatment. Always seek the advice of a qualified health provider with any questions you may have regarding a medical condition.

The predictions provided are based on algorithms with inherent limitations. The system has not been approved for clinical use, and all results should be interpreted by healthcare professionals.

Seek immediate medical attention if you believe you may have a medical emergency.`
}

func Educational() string {
	return `*Skin Cancer Facts*

Melanoma is the most dangerous form of skin cancer. It develops in the cells that produce melanin, the pigment that gives skin its color.

*The ABCDE Rule* helps identify warning signs:
• Asymmetry: one half doesn't match the other
• Border: irregular, ragged, notched, or blurred edges
• Color: various colors or shades within the same mole
• Diameter: larger than 6mm (about the size of a pencil eraser)
• Evolving: changing in size, shape, color, or elevation

*Risk factors*: excessive sun exposure, history of sunburns, family history of skin cancer, fair skin, multiple or unusual moles.

*Prevention*: apply sunscreen (SPF 30+) regularly, wear protective clothing, seek shade during peak sun hours, perform regular skin self-examinations, and visit a dermatologist annually.`
}

// NextSteps returns the recommended follow-up for a prediction label.
func NextSteps(label domain.Label) string {
	if label == domain.LabelMelanoma {
		return `*Recommended next steps*

1. Consult a dermatologist promptly - schedule an appointment within the next 1-2 weeks.
2. Prepare for your appointment: take additional photos of the lesion for comparison, note any changes you've observed, and bring a list of symptoms.
3. While waiting: avoid irritating the area, protect it from sun exposure, and do not attempt to remove or treat the lesion yourself.
4. At your appointment the dermatologist may examine the lesion with a dermoscope, take a biopsy, or recommend additional tests.

Early detection and treatment significantly improve outcomes for melanoma.`
	}
	return `*Recommended next steps*

1. Regular monitoring - take photos every 3 months to track any changes.
2. Practice the ABCDE rule to watch for asymmetry, border irregularity, color changes, diameter increases, or evolution of any kind.
3. Consider a routine dermatology check-up, especially with a family history of skin cancer, previous skin cancers, multiple moles, or fair skin.
4. Sun protection: broad-spectrum sunscreen (SPF 30+), protective clothing, shade during peak UV hours (10am-4pm).

Even with a likely benign result, any concerning changes should prompt a dermatologist visit.`
}

// Example pairs a caption with a public educational image URL.
type Example struct {
	Caption string
	URL     string
}

// Examples lists educational lesion images from public medical archives.
func Examples() []Example {
	return []Example{
		{"Typical Benign Nevus", "https://www.isic-archive.com/api/v1/image/5436e3abbae478396759f0cf/thumbnail"},
		{"Atypical Nevus", "https://www.isic-archive.com/api/v1/image/5436e3acbae478396759f0d1/thumbnail"},
		{"Melanoma Example", "https://www.isic-archive.com/api/v1/image/5436e3adbae478396759f0dd/thumbnail"},
		{"Early Melanoma", "https://www.isic-archive.com/api/v1/image/5436e3adbae478396759f0df/thumbnail"},
	}
}
