package handler

import "testing"

// Payload validation checks field presence only. Value constraints (length,
// format) belong to the database; anything existing clients send must keep
// reaching the stored routine.
func TestAddUserValidationIsPresenceOnly(t *testing.T) {
	req := &AddUserRequest{
		Username:  "alice",
		Password:  "p@ss",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice",
		RoleType:  "provider",
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("payload with short password and loose email rejected: %v", err)
	}
}

func TestAddUserValidationRequiresFields(t *testing.T) {
	req := &AddUserRequest{
		Username: "alice",
		Password: "p@ss",
	}

	if err := req.Validate(); err == nil {
		t.Fatal("payload with missing required fields accepted")
	}
}

func TestEditUserValidationIsPresenceOnly(t *testing.T) {
	req := &EditUserRequest{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@",
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("loose email rejected: %v", err)
	}
}

func TestAddProviderValidationIsPresenceOnly(t *testing.T) {
	req := &AddProviderRequest{
		ProviderName: "Food Bank",
		Username:     "alice",
		AddressLine1: "1 Main St",
		Zipcode:      "99501",
		City:         "Anchorage",
		State:        "AK",
		PhoneNumber:  "907-555-0100",
		PhoneType:    "office",
		Email:        "frontdesk",
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("loose email rejected: %v", err)
	}
}
