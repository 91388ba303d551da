package validation

// UserRequest validates the fields of a user create/update request.
func (v *Validator) UserRequest(email, password, firstName, lastName string) {
	v.Required("email", email)
	v.Email("email", email)
	v.Password("password", password)
	v.Required("first_name", firstName)
	v.Required("last_name", lastName)
}
