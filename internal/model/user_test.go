package model

import "testing"

func TestUserEquals(t *testing.T) {
	user1, user2 := newFixtureUsers()

	if !user1.Equals(user1) {
		t.Error("a user equals itself")
	}
	if user1.Equals(user2) {
		t.Error("different ids are different users")
	}

	sameAttributes := User{ID: 3, UserID: user1.UserID, Password: user1.Password, Name: user1.Name, Email: user1.Email}
	if user1.Equals(sameAttributes) {
		t.Error("equality is by id, not by attributes")
	}
}
