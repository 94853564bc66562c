package storage

import "hrdesk/backend/internal/models"

// Shallow merge helpers shared by both backends. Only non-nil patch fields
// overwrite; list-valued fields are replaced, not appended.

func applyUserPatch(u *models.User, p models.UserPatch) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.LastLogin != nil {
		u.LastLogin = p.LastLogin
	}
}

func applyComplaintPatch(c *models.Complaint, p models.ComplaintPatch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Category != nil {
		c.Category = p.Category
	}
	if p.AssignedTo != nil {
		c.AssignedTo = p.AssignedTo
	}
	if p.AIAnalysis != nil {
		c.AIAnalysis = p.AIAnalysis
	}
	if p.AIRecommendations != nil {
		c.AIRecommendations = *p.AIRecommendations
	}
	if p.SentimentScore != nil {
		c.SentimentScore = p.SentimentScore
	}
	if p.ConfidenceScore != nil {
		c.ConfidenceScore = p.ConfidenceScore
	}
	if p.IsAnonymous != nil {
		c.IsAnonymous = *p.IsAnonymous
	}
}

func applyMeetingPatch(m *models.Meeting, p models.MeetingPatch) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.AttendeeIDs != nil {
		m.AttendeeIDs = *p.AttendeeIDs
	}
	if p.ScheduledDate != nil {
		m.ScheduledDate = *p.ScheduledDate
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.MeetingLink != nil {
		m.MeetingLink = p.MeetingLink
	}
	if p.RelatedComplaintID != nil {
		m.RelatedComplaintID = p.RelatedComplaintID
	}
}

func applyScenarioPatch(s *models.Scenario, p models.ScenarioPatch) {
	if p.Scenario != nil {
		s.Scenario = *p.Scenario
	}
	if p.AIResponse != nil {
		s.AIResponse = p.AIResponse
	}
	if p.RecommendedActions != nil {
		s.RecommendedActions = *p.RecommendedActions
	}
	if p.RiskLevel != nil {
		s.RiskLevel = p.RiskLevel
	}
}
