// internal/corpus/samples.go
package corpus

// Sample is one input text and the kind of writing it represents.
type Sample struct {
	Category string `json:"category" yaml:"category"`
	Text     string `json:"text" yaml:"text"`
}

// Categories of the built-in samples.
const (
	CategoryWorkplaceEmail        = "workplace_email"
	CategoryTechnicalWriting      = "technical_writing"
	CategoryCasual                = "casual"
	CategoryLongComplex           = "long_complex"
	CategoryCommonPhrases         = "common_phrases"
	CategoryTechnicalInstructions = "technical_instructions"
	CategoryProjectManagement     = "project_management"
	CategoryNotifications         = "notifications"
	CategoryMeetingNotes          = "meeting_notes"
	CategoryCustomerService       = "customer_service"
	CategorySystemMessages        = "system_messages"
	CategoryProductDescriptions   = "product_descriptions"
	CategoryAcademic              = "academic"
	CategoryPersonalNotes         = "personal_notes"
	CategorySocialMedia           = "social_media"
	CategoryLongTechnical         = "long_technical"
	CategoryCommonResponses       = "common_responses"
	CategoryProcessDescriptions   = "process_descriptions"
)

// Samples is the built-in demo corpus: everyday sentences across registers,
// lengths and punctuation styles.
var Samples = []Sample{
	{CategoryWorkplaceEmail, "I've attached the quarterly report for your review."},
	{CategoryWorkplaceEmail, "Please let me know if you have any questions about the presentation."},
	{CategoryWorkplaceEmail, "Could we schedule a meeting to discuss the project timeline?"},
	{CategoryWorkplaceEmail, "Thank you for your feedback on the proposal."},
	{CategoryWorkplaceEmail, "I'll forward the information to the development team."},
	{CategoryWorkplaceEmail, "Looking forward to our discussion tomorrow afternoon."},
	{CategoryWorkplaceEmail, "The deadline for submission has been extended to Friday."},
	{CategoryWorkplaceEmail, "Can you send me the updated version of the document?"},

	{CategoryTechnicalWriting, "The function returns a boolean value indicating success."},
	{CategoryTechnicalWriting, "Make sure to initialize the variables before using them."},
	{CategoryTechnicalWriting, "The database migration should be completed overnight."},
	{CategoryTechnicalWriting, "Remember to commit your changes before pushing to main."},
	{CategoryTechnicalWriting, "Check the configuration settings in the environment file."},
	{CategoryTechnicalWriting, "The API documentation needs to be updated accordingly."},
	{CategoryTechnicalWriting, "Users should authenticate before accessing protected routes."},
	{CategoryTechnicalWriting, "The algorithm complexity is logarithmic in the worst case."},

	{CategoryCasual, "Hey, are you still coming to lunch today?"},
	{CategoryCasual, "Did you see the new episode last night?"},
	{CategoryCasual, "I'm running a bit late, should be there in 15 minutes."},
	{CategoryCasual, "Don't forget to bring your laptop to the meeting."},
	{CategoryCasual, "Thanks for helping me with the move this weekend."},
	{CategoryCasual, "What time should we meet at the restaurant?"},
	{CategoryCasual, "The weather is supposed to be nice tomorrow."},
	{CategoryCasual, "Can you pick up some coffee on your way here?"},

	{CategoryLongComplex, "The implementation of the new security protocol requires careful consideration of existing infrastructure limitations."},
	{CategoryLongComplex, "Despite the challenges we faced during development, the team successfully delivered the project ahead of schedule."},
	{CategoryLongComplex, "Please ensure all necessary documentation is completed before submitting the final report to the committee."},
	{CategoryLongComplex, "The integration between the legacy system and new platform should be thoroughly tested before deployment."},

	{CategoryCommonPhrases, "Looking forward to hearing from you soon."},
	{CategoryCommonPhrases, "Please find attached the requested information."},
	{CategoryCommonPhrases, "Let me know if you need anything else."},
	{CategoryCommonPhrases, "I hope this email finds you well."},
	{CategoryCommonPhrases, "Thanks for bringing this to my attention."},
	{CategoryCommonPhrases, "I appreciate your quick response."},

	{CategoryTechnicalInstructions, "Install the required dependencies using the package manager."},
	{CategoryTechnicalInstructions, "Ensure all tests pass before merging the pull request."},
	{CategoryTechnicalInstructions, "The configuration file should be placed in the root directory."},
	{CategoryTechnicalInstructions, "Update the environment variables according to the documentation."},
	{CategoryTechnicalInstructions, "Remember to handle edge cases in the implementation."},

	{CategoryProjectManagement, "The sprint planning meeting is scheduled for Monday morning."},
	{CategoryProjectManagement, "Please update your tasks in the project management system."},
	{CategoryProjectManagement, "We need to prioritize the critical bug fixes this week."},
	{CategoryProjectManagement, "The client requested additional features for the next release."},
	{CategoryProjectManagement, "Team availability should be updated in the shared calendar."},

	{CategoryNotifications, "An unexpected error occurred during the process."},
	{CategoryNotifications, "Your session has expired, please log in again."},
	{CategoryNotifications, "The requested resource is temporarily unavailable."},
	{CategoryNotifications, "Invalid credentials, please check your username and password."},

	{CategoryMeetingNotes, "Action items were assigned to respective team members."},
	{CategoryMeetingNotes, "The next review meeting is scheduled for next Thursday."},
	{CategoryMeetingNotes, "Key decisions were documented in the shared workspace."},
	{CategoryMeetingNotes, "Budget allocations for Q4 were discussed and approved."},

	{CategoryCustomerService, "We apologize for any inconvenience this may have caused."},
	{CategoryCustomerService, "Your feedback helps us improve our services."},
	{CategoryCustomerService, "A support representative will contact you shortly."},
	{CategoryCustomerService, "Please provide your order number for reference."},

	{CategorySystemMessages, "The system maintenance is scheduled for this weekend."},
	{CategorySystemMessages, "All users should save their work before the update begins."},
	{CategorySystemMessages, "Database backup process will start automatically."},
	{CategorySystemMessages, "Please update your password according to the new policy."},

	{CategoryProductDescriptions, "This feature enables seamless integration with existing tools."},
	{CategoryProductDescriptions, "Advanced analytics provide detailed insights into user behavior."},
	{CategoryProductDescriptions, "The new interface offers improved accessibility options."},
	{CategoryProductDescriptions, "Regular updates ensure optimal performance and security."},

	{CategoryAcademic, "The research methodology follows established scientific principles."},
	{CategoryAcademic, "Results indicate a significant correlation between variables."},
	{CategoryAcademic, "Further studies are needed to validate these findings."},
	{CategoryAcademic, "The literature review reveals several important gaps."},

	{CategoryPersonalNotes, "Remember to call back about the insurance quote."},
	{CategoryPersonalNotes, "Need to finish the presentation by end of day."},
	{CategoryPersonalNotes, "Dentist appointment next Tuesday at 2:30."},
	{CategoryPersonalNotes, "Pick up groceries on the way home from work."},

	{CategorySocialMedia, "Check out our latest blog post about industry trends."},
	{CategorySocialMedia, "Don't forget to subscribe to our newsletter."},
	{CategorySocialMedia, "Share your thoughts in the comments below."},
	{CategorySocialMedia, "Follow us for more updates and announcements."},

	{CategoryLongTechnical, "The recursive implementation of the algorithm ensures optimal space complexity while maintaining reasonable performance characteristics."},
	{CategoryLongTechnical, "Cross-platform compatibility requires careful consideration of different operating system architectures and their specific constraints."},
	{CategoryLongTechnical, "Microservice architecture enables independent scaling and deployment of individual components while increasing system resilience."},

	{CategoryCommonResponses, "I'll look into this and get back to you soon."},
	{CategoryCommonResponses, "That works perfectly for my schedule."},
	{CategoryCommonResponses, "Could you please clarify what you mean by that?"},
	{CategoryCommonResponses, "I'm not available at that time, can we reschedule?"},

	{CategoryProcessDescriptions, "First initialize the environment variables before starting the application."},
	{CategoryProcessDescriptions, "Regularly backup your data to prevent potential loss."},
	{CategoryProcessDescriptions, "Monitor system resources to ensure optimal performance."},
	{CategoryProcessDescriptions, "Document any changes made to the production environment."},
}

// Filter returns the samples in category, or all samples when category is empty.
func Filter(samples []Sample, category string) []Sample {
	if category == "" {
		return samples
	}
	var out []Sample
	for _, s := range samples {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
