package domain

// Session tracks the single logged-in user of the console process. With no
// user logged in every permission predicate answers false.
type Session struct {
	current *User
}

func NewSession() *Session {
	return &Session{}
}

// Start begins a session for the given user.
func (s *Session) Start(user *User) {
	s.current = user
}

// End clears the session.
func (s *Session) End() {
	s.current = nil
}

// Current returns the logged-in user, or nil.
func (s *Session) Current() *User {
	return s.current
}

// LoggedIn reports whether a user is logged in.
func (s *Session) LoggedIn() bool {
	return s.current != nil
}

func (s *Session) CanManageUsers() bool {
	return s.current != nil && s.current.CanManageUsers()
}

func (s *Session) CanManageProducts() bool {
	return s.current != nil && s.current.CanManageProducts()
}

func (s *Session) CanManageOrders() bool {
	return s.current != nil && s.current.CanManageOrders()
}

func (s *Session) CanViewReports() bool {
	return s.current != nil && s.current.CanViewReports()
}

func (s *Session) CanDeleteOrders() bool {
	return s.current != nil && s.current.CanDeleteOrders()
}
