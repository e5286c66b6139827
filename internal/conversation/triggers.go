package conversation

import "strings"

// earlyExitTriggers force campaign generation from any state, before
// normal transition rules run.
var earlyExitTriggers = []string{
	"generate campaign now",
	"use what you have",
	"just generate",
	"go with what we have",
}

// affirmativeTriggers start generation only from ready_for_campaign.
var affirmativeTriggers = []string{
	"create campaign",
	"yes",
	"generate",
	"make campaign",
	"proceed",
	"go ahead",
	"ready",
	"start",
}

// researchTriggers ask for automated insight lookup while gathering
// insights.
var researchTriggers = []string{
	"research",
	"suggest",
	"find some",
	"look up",
	"automate",
}

func containsAny(messageLower string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(messageLower, t) {
			return true
		}
	}
	return false
}

func isEarlyExit(message string) bool {
	return containsAny(strings.ToLower(message), earlyExitTriggers)
}

func isAffirmative(message string) bool {
	return containsAny(strings.ToLower(message), affirmativeTriggers)
}

// wantsResearch reports whether the message asks for automated lookup
// of competitors or trends.
func wantsResearch(message string) bool {
	lower := strings.ToLower(message)
	if !containsAny(lower, researchTriggers) {
		return false
	}
	return strings.Contains(lower, "competitor") ||
		strings.Contains(lower, "competition") ||
		strings.Contains(lower, "trend") ||
		strings.Contains(lower, "keyword")
}
