package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"yoga-studio/internal/client"
)

// Cliente de consola que recorre los mismos flujos que la SPA: login,
// registro, perfil, listado de sesiones e inscripción.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	state := client.NewSessionState()
	c := client.New(baseURL, state)
	authSvc := client.NewAuthService(c)
	sessionAPI := client.NewSessionAPI(c)
	userAPI := client.NewUserAPI(c)
	teacherAPI := client.NewTeacherAPI(c)

	for {
		info, logged := state.Snapshot()
		if !logged {
			fmt.Println("===== Yoga Studio =====")
			fmt.Println("[1] Login")
			fmt.Println("[2] Registrarse")
			fmt.Println("[Q] Salir")
			fmt.Print("Selección: ")
			choice := readLine(reader)

			switch strings.ToUpper(choice) {
			case "1":
				loginFlow(ctx, reader, authSvc, state)
			case "2":
				registerFlow(ctx, reader, authSvc)
			case "Q":
				return
			default:
				fmt.Println("Selección inválida.")
			}
			continue
		}

		fmt.Printf("===== Sesiones (%s) =====\n", info.Username)
		fmt.Println("[1] Listar sesiones")
		fmt.Println("[2] Ver instructores")
		fmt.Println("[3] Mi cuenta")
		if info.Admin {
			fmt.Println("[4] Crear sesión")
			fmt.Println("[5] Borrar sesión")
		}
		fmt.Println("[L] Logout")
		fmt.Print("Selección: ")
		choice := readLine(reader)

		switch strings.ToUpper(choice) {
		case "1":
			sessionsFlow(ctx, reader, sessionAPI, info)
		case "2":
			teachersFlow(ctx, teacherAPI)
		case "3":
			meFlow(ctx, reader, userAPI, state, info)
		case "4":
			if info.Admin {
				createSessionFlow(ctx, reader, sessionAPI)
			}
		case "5":
			if info.Admin {
				fmt.Print("ID de sesión: ")
				if id := readLine(reader); id != "" {
					reportErr(sessionAPI.Delete(ctx, id))
				}
			}
		case "L":
			state.LogOut()
			fmt.Println("Sesión cerrada.")
		default:
			fmt.Println("Selección inválida.")
		}
	}
}

func loginFlow(ctx context.Context, reader *bufio.Reader, authSvc *client.AuthService, state *client.SessionState) {
	fmt.Print("Email: ")
	email := readLine(reader)
	fmt.Print("Password: ")
	password := readLine(reader)

	info, err := authSvc.Login(ctx, client.LoginRequest{Email: email, Password: password})
	if err != nil {
		reportErr(err)
		return
	}
	state.LogIn(info)
	fmt.Printf("Bienvenido, %s %s.\n", info.FirstName, info.LastName)
}

func registerFlow(ctx context.Context, reader *bufio.Reader, authSvc *client.AuthService) {
	fmt.Print("Email: ")
	email := readLine(reader)
	fmt.Print("Password: ")
	password := readLine(reader)
	fmt.Print("Nombre: ")
	firstName := readLine(reader)
	fmt.Print("Apellido: ")
	lastName := readLine(reader)

	err := authSvc.Register(ctx, client.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		reportErr(err)
		return
	}
	fmt.Println("Cuenta creada. Ahora podés loguearte.")
}

func sessionsFlow(ctx context.Context, reader *bufio.Reader, sessionAPI *client.SessionAPI, info *client.SessionInformation) {
	sessions, err := sessionAPI.List(ctx)
	if err != nil {
		reportErr(err)
		return
	}
	if len(sessions) == 0 {
		fmt.Println("No hay sesiones.")
		return
	}

	for i, s := range sessions {
		joined := ""
		for _, id := range s.Participants {
			if id == info.ID {
				joined = " (inscripto)"
				break
			}
		}
		fmt.Printf("[%d] %s — %s%s\n", i+1, s.Name, s.Date.Format("2006-01-02 15:04"), joined)
	}
	fmt.Print("Número para inscribirte/bajarte (enter para volver): ")
	choice := readLine(reader)
	if choice == "" {
		return
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(sessions) {
		fmt.Println("Selección inválida.")
		return
	}

	selected := sessions[idx-1]
	joined := false
	for _, id := range selected.Participants {
		if id == info.ID {
			joined = true
			break
		}
	}
	if joined {
		reportErr(sessionAPI.Unparticipate(ctx, selected.ID, info.ID))
	} else {
		reportErr(sessionAPI.Participate(ctx, selected.ID, info.ID))
	}
}

func teachersFlow(ctx context.Context, teacherAPI *client.TeacherAPI) {
	teachers, err := teacherAPI.List(ctx)
	if err != nil {
		reportErr(err)
		return
	}
	for _, t := range teachers {
		fmt.Printf("- %s %s\n", t.FirstName, t.LastName)
	}
}

func meFlow(ctx context.Context, reader *bufio.Reader, userAPI *client.UserAPI, state *client.SessionState, info *client.SessionInformation) {
	user, err := userAPI.Get(ctx, info.ID)
	if err != nil {
		reportErr(err)
		return
	}
	fmt.Printf("%s %s <%s> admin=%t\n", user.FirstName, user.LastName, user.Email, user.Admin)
	fmt.Print("[D] Borrar cuenta, enter para volver: ")
	if strings.EqualFold(readLine(reader), "D") {
		if err := userAPI.Delete(ctx, info.ID); err != nil {
			reportErr(err)
			return
		}
		// El token sigue siendo válido hasta expirar; solo se limpia el estado local.
		state.LogOut()
		fmt.Println("Cuenta borrada.")
	}
}

func createSessionFlow(ctx context.Context, reader *bufio.Reader, sessionAPI *client.SessionAPI) {
	fmt.Print("Nombre: ")
	name := readLine(reader)
	fmt.Print("Descripción: ")
	description := readLine(reader)
	fmt.Print("Fecha (2006-01-02 15:04): ")
	dateStr := readLine(reader)
	fmt.Print("ID de instructor: ")
	teacherID := readLine(reader)

	date, err := parseDate(dateStr)
	if err != nil {
		fmt.Println("Fecha inválida.")
		return
	}

	session, err := sessionAPI.Create(ctx, client.SessionRequest{
		Name:        name,
		Description: description,
		Date:        date,
		TeacherID:   teacherID,
	})
	if err != nil {
		reportErr(err)
		return
	}
	fmt.Printf("Sesión creada: %s\n", session.ID)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func reportErr(err error) {
	if err == nil {
		fmt.Println("OK.")
		return
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Printf("Error %d: %s\n", apiErr.Status, apiErr.Message)
		return
	}
	fmt.Printf("Error: %v\n", err)
}
