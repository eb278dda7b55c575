package detection

import "math"

// Stats summarizes the keypoints of a single detection result.
type Stats struct {
	// Count is the number of detected keypoints.
	Count int `json:"count"`

	// MeanResponse and MaxResponse summarize detector response strength.
	MeanResponse float64 `json:"mean_response"`
	MaxResponse  float64 `json:"max_response"`

	// MeanSize is the average keypoint diameter in pixels.
	MeanSize float64 `json:"mean_size"`

	// CenterX and CenterY are the centroid of keypoint positions.
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	// SpreadX and SpreadY are the standard deviations of keypoint
	// positions along each axis, a rough measure of how widely the
	// features cover the image.
	SpreadX float64 `json:"spread_x"`
	SpreadY float64 `json:"spread_y"`
}

// Summarize computes keypoint statistics for a detection result.
// An empty result yields a zero Stats.
func Summarize(r *Result) Stats {
	s := Stats{Count: len(r.Keypoints)}
	if s.Count == 0 {
		return s
	}

	var sumResp, sumSize, sumX, sumY float64
	for _, kp := range r.Keypoints {
		sumResp += kp.Response
		sumSize += kp.Size
		sumX += kp.X
		sumY += kp.Y
		if kp.Response > s.MaxResponse {
			s.MaxResponse = kp.Response
		}
	}

	n := float64(s.Count)
	s.MeanResponse = sumResp / n
	s.MeanSize = sumSize / n
	s.CenterX = sumX / n
	s.CenterY = sumY / n

	var varX, varY float64
	for _, kp := range r.Keypoints {
		dx := kp.X - s.CenterX
		dy := kp.Y - s.CenterY
		varX += dx * dx
		varY += dy * dy
	}
	s.SpreadX = math.Sqrt(varX / n)
	s.SpreadY = math.Sqrt(varY / n)
	return s
}
