package services

import (
	"encoding/json"
	"errors"
	"strings"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
	"tourism-backend/repository"
)

// Generator produces the plan texts for a set of matched spots. The text
// content itself lives behind this interface; the service only stores what
// comes back.
type Generator interface {
	RoutePlan(spots []entity.ScenicSpot, userInput string) string
	TransportPlan(spots []entity.ScenicSpot, userInput string) string
	StrategyPlan(spots []entity.ScenicSpot, userInput string) string
}

type AssistantService struct {
	Repo       *repository.PlanRepository
	ScenicRepo *repository.ScenicRepository
	Gen        Generator
}

func NewAssistantService(repo *repository.PlanRepository, scenicRepo *repository.ScenicRepository, gen Generator) *AssistantService {
	return &AssistantService{Repo: repo, ScenicRepo: scenicRepo, Gen: gen}
}

type PlanReq struct {
	ScenicSpots []string `json:"scenicSpots" binding:"required,min=1"`
	QueryType   string   `json:"queryType" binding:"omitempty,oneof=route transport strategy general"`
	UserInput   string   `json:"userInput"`
}

type PlanRes struct {
	QueryID       uint     `json:"queryId"`
	QueryType     string   `json:"queryType"`
	Matched       []string `json:"matched"`
	NotFound      []string `json:"notFound"`
	RoutePlan     string   `json:"routePlan,omitempty"`
	TransportPlan string   `json:"transportPlan,omitempty"`
	StrategyPlan  string   `json:"strategyPlan,omitempty"`
	FullResponse  string   `json:"fullResponse"`
}

// suffixes stripped from a spot name when exact and substring matching both
// miss, e.g. "白石山景区" still finds "白石山".
var spotNameSuffixes = []string{"景区", "公园", "景点", "旅游区", "风景区"}

// MatchSpots resolves free-form spot names against the catalog: exact name
// first, then substring, then suffix-stripped variants. Names that still
// miss are reported back instead of failing the whole request.
func (s *AssistantService) MatchSpots(names []string) (matched []entity.ScenicSpot, notFound []string, err error) {
	seen := make(map[uint]bool)
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		spot, ferr := s.ScenicRepo.FindByExactName(name)
		if errors.Is(ferr, apperr.ErrNotFound) {
			spot, ferr = s.ScenicRepo.FindByNameContains(name)
		}
		if errors.Is(ferr, apperr.ErrNotFound) {
			for _, suffix := range spotNameSuffixes {
				variant := strings.TrimSpace(strings.ReplaceAll(name, suffix, ""))
				if variant == "" || variant == name {
					continue
				}
				spot, ferr = s.ScenicRepo.FindByNameContains(variant)
				if ferr == nil {
					break
				}
			}
		}

		if errors.Is(ferr, apperr.ErrNotFound) {
			notFound = append(notFound, name)
			continue
		}
		if ferr != nil {
			return nil, nil, ferr
		}
		if !seen[spot.ID] {
			seen[spot.ID] = true
			matched = append(matched, *spot)
		}
	}
	return matched, notFound, nil
}

// Plan matches the requested spots, asks the generator for the plan texts
// selected by queryType, and logs the query.
func (s *AssistantService) Plan(userID *uint, req *PlanReq) (*PlanRes, error) {
	queryType := req.QueryType
	if queryType == "" {
		queryType = entity.PlanTypeGeneral
	}

	matched, notFound, err := s.MatchSpots(req.ScenicSpots)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, apperr.Validationf("none of the requested spots were found")
	}

	res := &PlanRes{QueryType: queryType, NotFound: notFound}
	for _, sp := range matched {
		res.Matched = append(res.Matched, sp.Name)
	}

	var sections []string
	if queryType == entity.PlanTypeRoute || queryType == entity.PlanTypeGeneral {
		res.RoutePlan = s.Gen.RoutePlan(matched, req.UserInput)
		sections = append(sections, res.RoutePlan)
	}
	if queryType == entity.PlanTypeTransport || queryType == entity.PlanTypeGeneral {
		res.TransportPlan = s.Gen.TransportPlan(matched, req.UserInput)
		sections = append(sections, res.TransportPlan)
	}
	if queryType == entity.PlanTypeStrategy || queryType == entity.PlanTypeGeneral {
		res.StrategyPlan = s.Gen.StrategyPlan(matched, req.UserInput)
		sections = append(sections, res.StrategyPlan)
	}
	res.FullResponse = strings.Join(sections, "\n\n")

	namesJSON, _ := json.Marshal(req.ScenicSpots)
	q := entity.PlanQuery{
		UserID:        userID,
		QueryType:     queryType,
		ScenicSpots:   string(namesJSON),
		UserInput:     req.UserInput,
		RoutePlan:     res.RoutePlan,
		TransportPlan: res.TransportPlan,
		StrategyPlan:  res.StrategyPlan,
		FullResponse:  res.FullResponse,
	}
	if err := s.Repo.Create(&q); err != nil {
		return nil, err
	}
	res.QueryID = q.ID
	return res, nil
}

func (s *AssistantService) History(userID uint, limit int) ([]entity.PlanQuery, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *AssistantService) SetFavorite(userID, queryID uint, fav bool) error {
	affected, err := s.Repo.SetFavorite(userID, queryID, fav)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
