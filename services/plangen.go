package services

import (
	"fmt"
	"strings"

	"tourism-backend/entity"
)

// TemplateGenerator is the default Generator: canned text stitched from the
// matched spot records. No inference anywhere, just templating.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) RoutePlan(spots []entity.ScenicSpot, userInput string) string {
	var b strings.Builder
	b.WriteString("【路线规划】\n")
	for i, sp := range spots {
		fmt.Fprintf(&b, "第%d站：%s（%s）", i+1, sp.Name, sp.Address)
		if sp.VisitDuration != "" {
			fmt.Fprintf(&b, "，建议游览%s", sp.VisitDuration)
		}
		b.WriteString("\n")
	}
	if userInput != "" {
		fmt.Fprintf(&b, "已结合您的需求：%s\n", userInput)
	}
	return b.String()
}

func (g *TemplateGenerator) TransportPlan(spots []entity.ScenicSpot, _ string) string {
	var b strings.Builder
	b.WriteString("【交通规划】\n")
	for _, sp := range spots {
		if sp.TrafficInfo != "" {
			fmt.Fprintf(&b, "%s：%s\n", sp.Name, sp.TrafficInfo)
		} else {
			fmt.Fprintf(&b, "%s：建议自驾或打车前往，地址 %s\n", sp.Name, sp.Address)
		}
	}
	return b.String()
}

func (g *TemplateGenerator) StrategyPlan(spots []entity.ScenicSpot, _ string) string {
	var b strings.Builder
	b.WriteString("【旅游策略】\n")
	for _, sp := range spots {
		fmt.Fprintf(&b, "%s：开放时间 %s，门票 %s 元", sp.Name, sp.OpenTime, sp.TicketPrice.StringFixed(2))
		if sp.BestSeason != "" {
			fmt.Fprintf(&b, "，最佳季节 %s", sp.BestSeason)
		}
		b.WriteString("\n")
	}
	return b.String()
}
