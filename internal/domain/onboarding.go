package domain

// OnboardingStep is one page of the first-run walkthrough.
type OnboardingStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageName   string `json:"image_name"`
	ProFeature  bool   `json:"pro_feature"`
}

func OnboardingSteps() []OnboardingStep {
	return []OnboardingStep{
		{Title: "Create a Professional Resume in Minutes", Description: "AI-Powered Assistance to Land Your Dream Job", ImageName: "doc.text.magnifyingglass"},
		{Title: "AI-Powered Suggestions", Description: "Get intelligent suggestions for phrases, keywords, and bullet points as you type.", ImageName: "lightbulb.fill", ProFeature: true},
		{Title: "Professionally Designed Templates", Description: "Choose from a wide variety of modern and professional templates to create a resume that stands out.", ImageName: "square.grid.2x2.fill"},
		{Title: "ATS-Optimized Resumes", Description: "Ensure your resume gets past Applicant Tracking Systems and into the hands of hiring managers.", ImageName: "checkmark.circle.fill", ProFeature: true},
	}
}
