package server

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.healthCheckHandler)

	s.app.Post("/api/chat", s.chatHandler)

	// Calendar connection flow for tenant owners
	s.app.Get("/oauth/google/start", s.oauthStartHandler)
	s.app.Get("/oauth/google/callback", s.oauthCallbackHandler)

	// CRM endpoints for the owner dashboard
	s.app.Get("/crm/conversations/:clave", s.crmVisitorsHandler)
	s.app.Get("/crm/conversations/:clave/:visitorId", s.crmConversationHandler)
	s.app.Delete("/crm/conversations/:clave/:visitorId", s.crmClearConversationHandler)
}
