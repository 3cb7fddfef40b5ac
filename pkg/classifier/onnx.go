package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
	"github.com/mkravets/skin-assist-bot/pkg/pipeline"
)

// Metadata mirrors the training export: tensor shapes and the ordered
// class names the output logits correspond to.
type Metadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
}

// ONNX runs inference through an onnxruntime session. It satisfies the
// same contract as the simulated backend, so a real trained model is a
// drop-in replacement.
type ONNX struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	meta         Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

func NewONNX(modelPath, metadataPath string) (*ONNX, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initializing onnx environment: %w", err)
	}

	metaRaw, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("reading model metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		return nil, fmt.Errorf("parsing model metadata: %w", err)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("creating input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("creating output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("creating onnx session: %w", err)
	}

	return &ONNX{
		session:      session,
		meta:         meta,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

func (o *ONNX) Predict(t *pipeline.Tensor) (domain.Prediction, error) {
	// The session owns a single pair of I/O tensors; serialize calls.
	o.mu.Lock()
	defer o.mu.Unlock()

	// HWC [0,1] tensor to the CHW layout the exported model expects.
	input := o.inputTensor.GetData()
	plane := t.Width * t.Height
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			for c := 0; c < 3; c++ {
				input[c*plane+y*t.Width+x] = t.At(x, y, c)
			}
		}
	}

	if err := o.session.Run(); err != nil {
		return domain.Prediction{}, fmt.Errorf("running inference: %w", err)
	}

	scores := o.outputTensor.GetData()
	if len(scores) > len(o.meta.Classes) {
		scores = scores[:len(o.meta.Classes)]
	}

	maxIdx := 0
	for i, v := range scores {
		if v > scores[maxIdx] {
			maxIdx = i
		}
	}

	return domain.Prediction{
		Label:      domain.Label(o.meta.Classes[maxIdx]),
		Confidence: softmaxProb(scores, maxIdx) * 100,
	}, nil
}

func softmaxProb(scores []float32, idx int) float64 {
	var max float64 = math.Inf(-1)
	for _, v := range scores {
		if float64(v) > max {
			max = float64(v)
		}
	}
	var sum float64
	for _, v := range scores {
		sum += math.Exp(float64(v) - max)
	}
	return math.Exp(float64(scores[idx])-max) / sum
}

func (o *ONNX) Close() {
	if o.inputTensor != nil {
		o.inputTensor.Destroy()
	}
	if o.outputTensor != nil {
		o.outputTensor.Destroy()
	}
	if o.session != nil {
		o.session.Destroy()
	}
	ort.DestroyEnvironment()
}
