package server

func init() {
	serve()
}
