package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"vehicleassist/internal/models"
	"vehicleassist/internal/nlu"
	"vehicleassist/internal/repository"
	"vehicleassist/internal/transcript"
)

// ErrClassify marks failures of the intent classifier so the transport can
// report them as an upstream problem.
var ErrClassify = errors.New("classify failed")

// Answer templates. The float verbs use minimal formatting (72.5 renders as
// "72.5", not "72.500000").
const (
	answerBattery = "The current battery status is %s%% and health is %s."
	answerRide    = "The vehicle traveled %s km."
	answerFault   = "Current fault code: %s, Status: %s."
	answerDefault = "I'm not sure how to help with that."
)

// BatterySource provides the latest battery snapshot.
type BatterySource interface {
	Latest(ctx context.Context) (*models.BatteryStat, error)
}

// RideSource provides the latest ride reading.
type RideSource interface {
	Latest(ctx context.Context) (*models.RideStat, error)
}

// FaultSource provides the latest fault code.
type FaultSource interface {
	Latest(ctx context.Context) (*models.FaultCode, error)
}

// AssistantService classifies a message and renders the answer for its intent.
type AssistantService struct {
	classifier nlu.Classifier
	batteries  BatterySource
	rides      RideSource
	faults     FaultSource
	log        *transcript.Store
	logger     *zap.Logger
}

// NewAssistantService builds service. log may be nil when no redis is configured.
func NewAssistantService(
	classifier nlu.Classifier,
	batteries BatterySource,
	rides RideSource,
	faults FaultSource,
	log *transcript.Store,
	logger *zap.Logger,
) *AssistantService {
	return &AssistantService{
		classifier: classifier,
		batteries:  batteries,
		rides:      rides,
		faults:     faults,
		log:        log,
		logger:     logger,
	}
}

// Reply classifies the message and answers from the latest telemetry row.
func (s *AssistantService) Reply(ctx context.Context, message string) (string, error) {
	result, err := s.classifier.Parse(ctx, message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassify, err)
	}

	answer, err := s.Answer(ctx, result.Intent)
	if err != nil {
		return "", err
	}

	if s.log != nil {
		entry := transcript.Entry{
			Question: message,
			Answer:   answer,
			Intent:   result.Intent,
			AskedAt:  time.Now().UTC(),
		}
		if err := s.log.Append(ctx, entry); err != nil {
			s.logger.Warn("transcript append failed", zap.Error(err))
		}
	}

	return answer, nil
}

// Answer renders the template for a classified intent. Unknown intents,
// including the empty below-threshold intent, take the default branch.
func (s *AssistantService) Answer(ctx context.Context, intent string) (string, error) {
	switch intent {
	case nlu.IntentBatteryStatus:
		stat, err := s.batteries.Latest(ctx)
		if err != nil {
			return "", s.dispatchErr(intent, err)
		}
		return fmt.Sprintf(answerBattery, formatFloat(stat.ChargePct), stat.Health), nil
	case nlu.IntentRideStatistics:
		stat, err := s.rides.Latest(ctx)
		if err != nil {
			return "", s.dispatchErr(intent, err)
		}
		return fmt.Sprintf(answerRide, formatFloat(stat.DistanceKm)), nil
	case nlu.IntentCheckFault:
		fault, err := s.faults.Latest(ctx)
		if err != nil {
			return "", s.dispatchErr(intent, err)
		}
		return fmt.Sprintf(answerFault, fault.Message, fault.Status), nil
	default:
		return answerDefault, nil
	}
}

// History returns recent exchanges for the chat page, newest first.
func (s *AssistantService) History(ctx context.Context) ([]transcript.Entry, error) {
	if s.log == nil {
		return []transcript.Entry{}, nil
	}
	return s.log.Recent(ctx)
}

func (s *AssistantService) dispatchErr(intent string, err error) error {
	if errors.Is(err, repository.ErrNoRecords) {
		s.logger.Warn("no telemetry for intent", zap.String("intent", intent))
	} else {
		s.logger.Error("latest row lookup failed", zap.String("intent", intent), zap.Error(err))
	}
	return fmt.Errorf("answer %s: %w", intent, err)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
