// README: Opaque identifier type shared by modules.
package types

type ID string
