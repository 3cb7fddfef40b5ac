package classifier

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
	"github.com/mkravets/skin-assist-bot/pkg/pipeline"
)

// Simulated stands in for a trained model. The score blends simple image
// statistics with a pseudo-random component seeded from the tensor
// contents, so identical images always classify identically while
// distinct images still vary.
type Simulated struct{}

func NewSimulated() *Simulated {
	return &Simulated{}
}

func (s *Simulated) Predict(t *pipeline.Tensor) (domain.Prediction, error) {
	brightness := t.Mean()
	red := t.MeanChannel(0)
	texture := t.StdDev()

	// Redder, darker and more textured lesions lean toward melanoma.
	factor := red*0.5 + math.Min(texture*3, 1)*0.3 + (1-brightness)*0.2

	rnd := rand.New(rand.NewSource(int64(tensorSeed(t))))
	prob := factor*0.7 + rnd.Float64()*0.3

	// Extreme scores are capped: the stand-in must never look certain.
	prob = math.Max(0.1, math.Min(0.9, prob))

	if prob > 0.5 {
		return domain.Prediction{Label: domain.LabelMelanoma, Confidence: prob * 100}, nil
	}
	return domain.Prediction{Label: domain.LabelBenign, Confidence: (1 - prob) * 100}, nil
}

func tensorSeed(t *pipeline.Tensor) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, v := range t.Data {
		bits := math.Float32bits(v)
		buf[0] = byte(bits)
		buf[1] = byte(bits >> 8)
		buf[2] = byte(bits >> 16)
		buf[3] = byte(bits >> 24)
		h.Write(buf[:])
	}
	return h.Sum64()
}
