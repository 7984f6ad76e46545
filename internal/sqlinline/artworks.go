package sqlinline

const QListArtworks = `--sql 32be00d8-d2a5-478e-8e0a-576672adc7a0
select id, title, prompt, style, author, likes, comments, image_url, description, created_at
from artworks
where $1::text = '' or style = $1::text
order by created_at desc, id desc;
`

const QGetArtwork = `--sql a3198ee1-91d3-41a0-addb-2c3b55e98958
select id, title, prompt, style, author, likes, comments, image_url, description, created_at
from artworks
where id = $1::bigint;
`

const QInsertArtwork = `--sql 8ed3d17f-3bf3-4214-bcd0-0b277f61167a
insert into artworks(title, prompt, style, author, likes, comments, image_url, description, created_at)
values ($1::text, $2::text, $3::text, $4::text, 0, 0, $5::text, $6::text, now())
returning id, created_at;
`

const QLikeArtwork = `--sql 9c79dd21-caee-4cdb-84dd-d3c847b82287
update artworks
set likes = likes + 1
where id = $1::bigint
returning id, title, prompt, style, author, likes, comments, image_url, description, created_at;
`

const QInsertComment = `--sql cdb87ac4-9d77-4e47-a519-40a04851fb98
with bumped as (
  update artworks set comments = comments + 1
  where id = $2::bigint
  returning id
)
insert into artwork_comments(id, artwork_id, author, body, created_at)
select $1::uuid, bumped.id, $3::text, $4::text, now()
from bumped
returning created_at;
`

const QListComments = `--sql 06afcdcc-f1c5-4468-b4b4-b8e073296657
select id::text, artwork_id, author, body, created_at
from artwork_comments
where artwork_id = $1::bigint
order by created_at asc, id asc;
`

const QCountArtworks = `--sql de7fb910-a958-40f4-ba24-6e6edb456f9b
select count(*) from artworks;
`

const QSeedArtwork = `--sql eae5d967-9552-463d-ab64-6d97431000e9
insert into artworks(id, title, prompt, style, author, likes, comments, image_url, description, created_at)
values ($1::bigint, $2::text, $3::text, $4::text, $5::text, $6::int, $7::int, $8::text, $9::text, $10::timestamptz)
on conflict (id) do nothing;
`

const QSyncArtworkSequence = `--sql 0c29d5e3-1714-4eae-8ebc-38e871ae4269
select setval(pg_get_serial_sequence('artworks', 'id'), coalesce((select max(id) from artworks), 1));
`
