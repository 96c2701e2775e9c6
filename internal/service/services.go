package service

import (
	"github.com/dom/notes-website/internal/repository"
)

type Services struct {
	User *UserService
	Note *NoteService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		User: NewUserService(repos.User),
		Note: NewNoteService(repos.Note),
	}
}
