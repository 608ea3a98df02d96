package server

// Server объединяет HTTP серверы отдельных сущностей: каталог игр и
// объявления.
type Server struct {
	GameServer
	AdServer
}

func NewServer(
	gameServer GameServer,
	adServer AdServer,
) Server {
	return Server{
		GameServer: gameServer,
		AdServer:   adServer,
	}
}
