package scoring

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/tipster/go/internal/models"
)

const (
	ScoringServiceName = "tipster.scoring.v1.ScoringService"

	ScoringServiceScoreTipProcedure       = "/" + ScoringServiceName + "/ScoreTip"
	ScoringServiceResolveWeightsProcedure = "/" + ScoringServiceName + "/ResolveWeights"
)

// ScoreTipRequest carries a hypothetical result and prediction
type ScoreTipRequest struct {
	TipType       models.TipType       `json:"tip_type"`
	HomeScore     *int                 `json:"home_score"`
	AwayScore     *int                 `json:"away_score"`
	TipHomeScore  *int                 `json:"tip_home_score,omitempty"`
	TipAwayScore  *int                 `json:"tip_away_score,omitempty"`
	TipWinner     *models.Winner       `json:"tip_winner,omitempty"`
	ScoringSystem models.ScoringSystem `json:"scoring_system"`
}

type ScoreTipResponse struct {
	Points      int           `json:"points"`
	MatchWinner models.Winner `json:"match_winner"`
	Weights     Weights       `json:"weights"`
}

type ResolveWeightsRequest struct {
	ScoringSystem models.ScoringSystem `json:"scoring_system"`
}

type ResolveWeightsResponse struct {
	Weights Weights `json:"weights"`
}

// Service exposes the scoring engine over connect so clients can preview points
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ScoreTip scores a prediction against a result without touching storage
func (s *Service) ScoreTip(ctx context.Context, req *connect.Request[ScoreTipRequest]) (*connect.Response[ScoreTipResponse], error) {
	msg := req.Msg
	if !msg.TipType.IsValid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, errInvalidTipType)
	}
	if msg.HomeScore == nil || msg.AwayScore == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingResult)
	}
	if err := Validate(msg.ScoringSystem); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	match := models.Match{
		HomeScore: msg.HomeScore,
		AwayScore: msg.AwayScore,
		Status:    models.MatchStatusFinished,
		TipType:   msg.TipType,
	}
	tip := models.Tip{
		HomeScore: msg.TipHomeScore,
		AwayScore: msg.TipAwayScore,
		Winner:    msg.TipWinner,
	}

	return connect.NewResponse(&ScoreTipResponse{
		Points:      ScoreTip(match, tip, msg.ScoringSystem),
		MatchWinner: WinnerFromScores(*msg.HomeScore, *msg.AwayScore),
		Weights:     Resolve(msg.ScoringSystem),
	}), nil
}

// ResolveWeights returns the effective weights of a partial scoring system
func (s *Service) ResolveWeights(ctx context.Context, req *connect.Request[ResolveWeightsRequest]) (*connect.Response[ResolveWeightsResponse], error) {
	if err := Validate(req.Msg.ScoringSystem); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewResponse(&ResolveWeightsResponse{
		Weights: Resolve(req.Msg.ScoringSystem),
	}), nil
}

// NewScoringServiceHandler builds the connect handler for svc and returns the
// path to mount it on.
func NewScoringServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	scoreTip := connect.NewUnaryHandler(ScoringServiceScoreTipProcedure, svc.ScoreTip, opts...)
	resolveWeights := connect.NewUnaryHandler(ScoringServiceResolveWeightsProcedure, svc.ResolveWeights, opts...)

	return "/" + ScoringServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ScoringServiceScoreTipProcedure:
			scoreTip.ServeHTTP(w, r)
		case ScoringServiceResolveWeightsProcedure:
			resolveWeights.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
