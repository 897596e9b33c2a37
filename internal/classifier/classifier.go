package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/imaging"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/knowledge"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
)

// Metadata is the JSON sidecar exported alongside the ONNX model.
type Metadata struct {
	ModelType   string   `json:"model_type"`
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
	Scale       string   `json:"scale"` // "raw" (0-255 pixels) or "unit" (0-1)
}

// ModelInfo is the metadata surface exposed on /model_info.
type ModelInfo struct {
	ModelType   string   `json:"model_type"`
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	NumClasses  int      `json:"num_classes"`
}

// Prediction is one inference result: the argmax class and its probability,
// plus the full per-class distribution for logging.
type Prediction struct {
	Label      knowledge.Label
	Confidence float64
	Scores     map[string]float32
}

// Classifier wraps a single ONNX session loaded once at process start and
// shared read-only across requests. The session's input/output tensors are
// reused, so calls are serialized with a mutex.
type Classifier struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	meta         Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	logger       *logger.Logger
}

// New loads the ONNX model and its metadata sidecar. A failed load is not
// fatal for the process; the caller keeps running without a classifier and
// refuses inference requests.
func New(modelPath, metadataPath string, log *logger.Logger) (*Classifier, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	raw, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model metadata: %w", err)
	}

	meta, err := ParseMetadata(raw)
	if err != nil {
		return nil, err
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	log.Info("Model loaded from %s (classes: %v)", modelPath, meta.Classes)

	return &Classifier{
		session:      session,
		meta:         meta,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		logger:       log,
	}, nil
}

// ParseMetadata validates the metadata sidecar. Every class the model can
// emit must be a member of the fixed label set.
func ParseMetadata(raw []byte) (Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse model metadata: %w", err)
	}

	if len(meta.Classes) == 0 {
		return Metadata{}, fmt.Errorf("model metadata lists no classes")
	}
	for _, c := range meta.Classes {
		if _, err := knowledge.ParseLabel(c); err != nil {
			return Metadata{}, fmt.Errorf("model metadata: %w", err)
		}
	}

	return meta, nil
}

// Predict runs inference on a normalized tensor and returns the
// highest-probability class with its confidence.
func (c *Classifier) Predict(t *imaging.Tensor) (Prediction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	input := c.inputTensor.GetData()
	if len(t.Data) != len(input) {
		return Prediction{}, fmt.Errorf("input has %d values, model expects %d", len(t.Data), len(input))
	}

	if c.meta.Scale == "unit" {
		for i, v := range t.Data {
			input[i] = v / 255.0
		}
	} else {
		copy(input, t.Data)
	}

	if err := c.session.Run(); err != nil {
		return Prediction{}, fmt.Errorf("inference failed: %w", err)
	}

	probs := normalize(c.outputTensor.GetData())
	idx := argmax(probs)
	if idx >= len(c.meta.Classes) {
		return Prediction{}, fmt.Errorf("output index %d has no class (model emits %d values, metadata lists %d classes)", idx, len(probs), len(c.meta.Classes))
	}

	label, err := knowledge.ParseLabel(c.meta.Classes[idx])
	if err != nil {
		return Prediction{}, err
	}

	scores := make(map[string]float32, len(c.meta.Classes))
	for i, class := range c.meta.Classes {
		if i < len(probs) {
			scores[class] = probs[i]
		}
	}
	c.logger.Info("🔍 Prediction probabilities: %v", scores)

	return Prediction{
		Label:      label,
		Confidence: float64(probs[idx]),
		Scores:     scores,
	}, nil
}

// Info reports the model metadata.
func (c *Classifier) Info() ModelInfo {
	return ModelInfo{
		ModelType:   c.meta.ModelType,
		InputShape:  c.meta.InputShape,
		OutputShape: c.meta.OutputShape,
		Classes:     c.meta.Classes,
		NumClasses:  len(c.meta.Classes),
	}
}

// Close releases the session and its tensors.
func (c *Classifier) Close() {
	if c.inputTensor != nil {
		c.inputTensor.Destroy()
	}
	if c.outputTensor != nil {
		c.outputTensor.Destroy()
	}
	if c.session != nil {
		c.session.Destroy()
	}
	ort.DestroyEnvironment()
}

// normalize applies softmax when the output row is not already a probability
// distribution (some exports keep the final activation outside the graph).
func normalize(out []float32) []float32 {
	var sum float32
	inRange := true
	for _, v := range out {
		if v < 0 || v > 1 {
			inRange = false
			break
		}
		sum += v
	}
	if inRange && sum > 0.99 && sum < 1.01 {
		return out
	}
	return softmax(out)
}

func softmax(out []float32) []float32 {
	max := out[argmax(out)]
	var sum float64
	exps := make([]float64, len(out))
	for i, v := range out {
		exps[i] = math.Exp(float64(v - max))
		sum += exps[i]
	}
	probs := make([]float32, len(out))
	for i := range exps {
		probs[i] = float32(exps[i] / sum)
	}
	return probs
}

func argmax(out []float32) int {
	maxIdx := 0
	for i, v := range out {
		if v > out[maxIdx] {
			maxIdx = i
		}
	}
	return maxIdx
}
