package models

import "testing"

func TestStepAllowed(t *testing.T) {
	testCases := []struct {
		Name     string
		LastStep string
		Step     string
		Allowed  bool
	}{
		{"Washed is the first step", "", StepWashed, true},
		{"Cannot press before washing", "", StepSteamPressed, false},
		{"Cannot fold before washing", "", StepFolded, false},
		{"Press after washing", StepWashed, StepSteamPressed, true},
		{"Fold after pressing", StepSteamPressed, StepFolded, true},
		{"Delivery after folding", StepFolded, StepOutForDeliver, true},
		{"Cannot skip pressing", StepWashed, StepFolded, false},
		{"Cannot repeat a step", StepWashed, StepWashed, false},
		{"Unknown step", StepWashed, "Dried", false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := StepAllowed(tc.LastStep, tc.Step); got != tc.Allowed {
				t.Errorf("StepAllowed(%q, %q) = %v, want %v", tc.LastStep, tc.Step, got, tc.Allowed)
			}
		})
	}
}

func TestStatusForStep(t *testing.T) {
	testCases := []struct {
		Name           string
		Step           string
		ExpectedStatus string
		Expected       bool
	}{
		{"Out for Delivery implies For Delivery status", StepOutForDeliver, OrderStatusForDelivery, true},
		{"Washed implies nothing", StepWashed, "", false},
		{"Pressed implies nothing", StepSteamPressed, "", false},
		{"Folded implies nothing", StepFolded, "", false},
		{"Unknown step implies nothing", "Dried", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			status, ok := StatusForStep(tc.Step)
			if ok != tc.Expected || status != tc.ExpectedStatus {
				t.Errorf("StatusForStep(%q) = (%q, %v), want (%q, %v)", tc.Step, status, ok, tc.ExpectedStatus, tc.Expected)
			}
		})
	}
}
