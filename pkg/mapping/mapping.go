package mapping

import (
	"github.com/umar/yourkhata/pkg/api"
	"github.com/umar/yourkhata/pkg/models"
)

// ToApiProfile converts a domain Profile model to an API Profile model.
func ToApiProfile(profile *models.Profile) *api.Profile {
	return &api.Profile{
		Id:          profile.Id,
		Name:        profile.Name,
		Description: profile.Description,
		CreatedAt:   profile.CreatedAt,
	}
}

// ToApiCustomer converts a domain Customer model to an API Customer model.
func ToApiCustomer(customer *models.Customer) *api.Customer {
	return &api.Customer{
		Id:          customer.Id,
		Name:        customer.Name,
		Initials:    customer.Initials,
		PhoneNumber: customer.PhoneNumber,
		Amount:      customer.Amount,
		ToReceive:   customer.ToReceive,
		CreatedAt:   customer.CreatedAt,
		ProfileId:   customer.ProfileId,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction
// model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:         tx.Id,
		CustomerId: tx.CustomerId,
		Amount:     tx.Amount,
		IsReceived: tx.IsReceived,
		Date:       tx.Date,
		Notes:      tx.Notes,
		Balance:    tx.Balance,
		ProfileId:  tx.ProfileId,
	}
}

// ToApiBatwaTransaction converts a domain BatwaTransaction model to an API
// BatwaTransaction model.
func ToApiBatwaTransaction(entry *models.BatwaTransaction) *api.BatwaTransaction {
	return &api.BatwaTransaction{
		Id:        entry.Id,
		Amount:    entry.Amount,
		Type:      string(entry.Type),
		Category:  entry.Category,
		Timestamp: entry.Timestamp,
		Notes:     entry.Notes,
		ProfileId: entry.ProfileId,
	}
}

// ToApiUserProfile converts a domain UserProfile model to an API UserProfile
// model.
func ToApiUserProfile(profile *models.UserProfile) *api.UserProfile {
	return &api.UserProfile{
		Id:             profile.Id,
		Name:           profile.Name,
		PhoneNumber:    profile.PhoneNumber,
		ProfilePicture: profile.ProfilePicture,
	}
}

// ToDomainUserProfile converts an API UserProfile model to a domain
// UserProfile model.
func ToDomainUserProfile(profile *api.UserProfile) *models.UserProfile {
	return &models.UserProfile{
		Id:             profile.Id,
		Name:           profile.Name,
		PhoneNumber:    profile.PhoneNumber,
		ProfilePicture: profile.ProfilePicture,
	}
}
