package player

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/pixil98/deepmud/internal/display"
	"github.com/pixil98/deepmud/internal/storage"
)

const maxPasswordTries = 3

// loginFlow resolves a connection to a named player file: either an
// existing one behind a password check or a freshly created one.
type loginFlow struct {
	store     storage.Storer[*PlayerFile]
	startRoom string
	startHP   int
}

func (f *loginFlow) Run(rw io.ReadWriter) (string, *PlayerFile, error) {
	rw.Write([]byte("Welcome to DeepMud!\n"))

	for {
		username, err := Prompt(rw, "By what name do you wish to be known? ",
			WithValidator(func(str string) (bool, string) {
				if len(str) == 0 {
					return false, "Invalid name, please try another.\n"
				}
				for _, r := range str {
					if !unicode.IsLetter(r) {
						return false, "Invalid name, please try another.\n"
					}
				}
				return true, ""
			}),
		)
		if err != nil {
			return "", nil, err
		}
		username = strings.ToLower(username)

		pf := f.store.Get(username)
		if pf == nil {
			pf, err = f.newPlayer(rw, username)
			if err != nil {
				return "", nil, err
			}
			if pf == nil {
				continue
			}
			return username, pf, nil
		}

		_, err = Prompt(rw, "Password: ", WithMaxTries(maxPasswordTries), WithValidator(
			func(str string) (bool, string) {
				if bcrypt.CompareHashAndPassword([]byte(pf.Password), []byte(str)) != nil {
					return false, ""
				}
				return true, ""
			},
		))
		if err != nil {
			return "", nil, err
		}

		return username, pf, nil
	}
}

func (f *loginFlow) newPlayer(rw io.ReadWriter, username string) (*PlayerFile, error) {
	ok, err := PromptYN(rw, fmt.Sprintf("Did I get that right, %s (Y/N)? ", display.Title(username)))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	for {
		passOne, err := Prompt(rw, fmt.Sprintf("Give me a password for %s: ", username), WithValidator(
			func(str string) (bool, string) {
				if len(str) == 0 || strings.EqualFold(str, username) {
					return false, "Illegal Password.\n"
				}
				return true, ""
			},
		))
		if err != nil {
			return nil, err
		}

		passTwo, err := Prompt(rw, "Please retype password: ")
		if err != nil {
			return nil, err
		}

		if passOne != passTwo {
			rw.Write([]byte("Passwords don't match... start over.\n"))
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(passOne), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}

		pf := &PlayerFile{
			Password: string(hash),
			RoomId:   f.startRoom,
			HP:       f.startHP,
		}
		if err := f.store.Save(username, pf); err != nil {
			return nil, fmt.Errorf("saving new player: %w", err)
		}

		return pf, nil
	}
}
